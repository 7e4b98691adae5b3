package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shruthi-d-official/WareHouse/internal/authz"
	"github.com/Shruthi-d-official/WareHouse/internal/middleware"
	"github.com/Shruthi-d-official/WareHouse/internal/models"
)

func getInt64FromCtx(c *gin.Context, key string) (int64, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case float64:
		return int64(t), true
	}
	return 0, false
}

func callerIdentity(c *gin.Context) (id int64, userID string, role authz.Role) {
	id, _ = getInt64FromCtx(c, middleware.CtxID)
	if v, ok := c.Get(middleware.CtxUserID); ok {
		userID, _ = v.(string)
	}
	if v, ok := c.Get(middleware.CtxRole); ok {
		s, _ := v.(string)
		role = authz.Role(s)
	}
	return
}

// respondDomainError maps the domain taxonomy onto HTTP status codes.
// Anything unrecognized is a server fault.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, models.ErrNotApproved):
		c.JSON(http.StatusForbidden, gin.H{"message": "Account not approved yet"})
	case errors.Is(err, models.ErrDuplicateLoginID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID already exists"})
	case errors.Is(err, models.ErrAlreadyApproved):
		c.JSON(http.StatusBadRequest, gin.H{"message": "You have already approved a team leader"})
	case errors.Is(err, models.ErrNotOwned):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found or not authorized"})
	case errors.Is(err, models.ErrOTPInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired OTP"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
