package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shruthi-d-official/WareHouse/internal/authz"
	"github.com/Shruthi-d-official/WareHouse/internal/services"
)

func newProtectedRouter(tokens *services.TokenService, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(tokens)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":      c.GetInt64(CtxID),
			"user_id": c.GetString(CtxUserID),
			"role":    c.GetString(CtxRole),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	r := newProtectedRouter(tokens)

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	r := newProtectedRouter(tokens)

	for _, header := range []string{"Token abc", "Bearer", "Bearer   "} {
		w := doGet(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddlewareRejectsForgedToken(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	other := services.NewTokenService("other-secret", time.Hour)
	forged, err := other.Issue(authz.RoleAdmin, 1, "admin")
	require.NoError(t, err)

	r := newProtectedRouter(tokens)
	w := doGet(r, "Bearer "+forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewarePopulatesIdentity(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	token, err := tokens.Issue(authz.RoleVendor, 2, "vendor-one")
	require.NoError(t, err)

	r := newProtectedRouter(tokens)
	w := doGet(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"vendor-one"`)
	assert.Contains(t, w.Body.String(), `"role":"vendor"`)
	assert.Contains(t, w.Body.String(), `"id":2`)
}

func TestRequireRolesDeniesOtherTier(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	token, err := tokens.Issue(authz.RoleWorker, 9, "worker-one")
	require.NoError(t, err)

	r := newProtectedRouter(tokens, RequireRoles(authz.RoleAdmin))
	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesAllowsListedTier(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	token, err := tokens.Issue(authz.RoleTeamLeader, 3, "leader-one")
	require.NoError(t, err)

	r := newProtectedRouter(tokens, RequireRoles(authz.RoleTeamLeader, authz.RoleVendor))
	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
