package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shruthi-d-official/WareHouse/internal/authz"
	"github.com/Shruthi-d-official/WareHouse/internal/models"
	"github.com/Shruthi-d-official/WareHouse/internal/services"
)

type AuthHandler struct {
	authService  *services.AuthService
	auditService *services.AuditService
}

func NewAuthHandler(authService *services.AuthService, auditService *services.AuditService) *AuthHandler {
	return &AuthHandler{authService: authService, auditService: auditService}
}

// @Summary      Login
// @Description  Authenticates an identity in its tier. Workers get an OTP challenge instead of a token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Credentials and role"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, err := authz.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	result, err := h.authService.Login(role, req.UserID, req.Password)
	if err != nil {
		log.Printf("[auth][login] denied: role=%s user=%q err=%v", role, req.UserID, err)
		respondDomainError(c, err)
		return
	}

	if result.RequiresOTP {
		c.JSON(http.StatusOK, gin.H{
			"message":     "OTP sent to your email. Please verify to complete login.",
			"requiresOTP": true,
			"workerId":    result.WorkerID,
		})
		return
	}

	h.auditService.Record(role, result.UserID, "LOGIN", fmt.Sprintf("Logged in as %s", role), c.ClientIP())
	log.Printf("[auth][login] success: role=%s id=%d", role, result.ID)

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user": gin.H{
			"id":     result.ID,
			"userId": result.UserID,
			"role":   result.Role,
		},
	})
}

// @Summary      Send OTP
// @Description  Issues a fresh OTP for a worker (e.g. when the previous mail never arrived).
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.SendOTPRequest  true  "Worker id"
// @Success      200      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /api/auth/send-otp [post]
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req models.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.ResendOTP(req.WorkerID); err != nil {
		if err == models.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Worker not found"})
			return
		}
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

// @Summary      Verify OTP
// @Description  Consumes the pending OTP and returns the worker session token. Failure reason is intentionally opaque.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.VerifyOTPRequest  true  "Worker id and code"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Router       /api/auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.VerifyOTP(req.WorkerID, req.OTPCode)
	if err != nil {
		log.Printf("[auth][verify-otp] denied: worker_id=%d err=%v", req.WorkerID, err)
		respondDomainError(c, err)
		return
	}

	h.auditService.Record(authz.RoleWorker, result.UserID, "WORKER_LOGIN", "Completed OTP verification", c.ClientIP())
	log.Printf("[auth][verify-otp] success: worker_id=%d", result.ID)

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user": gin.H{
			"id":     result.ID,
			"userId": result.UserID,
			"role":   result.Role,
		},
	})
}
