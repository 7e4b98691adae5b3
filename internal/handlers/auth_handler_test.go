package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
	"github.com/Shruthi-d-official/WareHouse/internal/repositories"
	"github.com/Shruthi-d-official/WareHouse/internal/services"
)

type noopEmailSender struct{}

func (noopEmailSender) SendOTPEmail(email, code string) error { return nil }

func newAuthRouterForTest(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	workers := repositories.NewWorkerRepository(db)
	otp := services.NewOTPService(repositories.NewOTPRepository(db), workers, noopEmailSender{}, 10*time.Minute)
	auth := services.NewAuthService(
		repositories.NewAdminRepository(db),
		repositories.NewVendorRepository(db),
		repositories.NewTeamLeaderRepository(db),
		workers,
		otp,
		services.NewTokenService("test-secret", time.Hour),
	)
	audit := services.NewAuditService(repositories.NewAuditRepository(db))
	h := NewAuthHandler(auth, audit)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/verify-otp", h.VerifyOTP)
	return r, mock
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginEndpointAdminSuccess(t *testing.T) {
	r, mock := newAuthRouterForTest(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT admin_id, user_id, password_hash, created_at FROM admins").
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"admin_id", "user_id", "password_hash", "created_at"}).
			AddRow(int64(1), "admin", string(hash), time.Now()))
	mock.ExpectExec("INSERT INTO audit_log").
		WithArgs("admin", "admin", "LOGIN", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := postJSON(r, "/api/auth/login", models.LoginRequest{UserID: "admin", Password: "password", Role: "admin"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginEndpointRejectsUnknownRole(t *testing.T) {
	r, _ := newAuthRouterForTest(t)

	w := postJSON(r, "/api/auth/login", models.LoginRequest{UserID: "admin", Password: "password", Role: "superuser"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid role")
}

func TestLoginEndpointOpaqueOnBadPassword(t *testing.T) {
	r, mock := newAuthRouterForTest(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT admin_id, user_id, password_hash, created_at FROM admins").
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"admin_id", "user_id", "password_hash", "created_at"}).
			AddRow(int64(1), "admin", string(hash), time.Now()))

	w := postJSON(r, "/api/auth/login", models.LoginRequest{UserID: "admin", Password: "wrong", Role: "admin"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyOTPEndpointOpaqueOnBadCode(t *testing.T) {
	r, mock := newAuthRouterForTest(t)

	mock.ExpectQuery("SELECT otp_id, worker_id, otp_code, expiry_time, status, created_at FROM otp_log").
		WithArgs(int64(9), "000000").
		WillReturnRows(sqlmock.NewRows([]string{"otp_id", "worker_id", "otp_code", "expiry_time", "status", "created_at"}))

	w := postJSON(r, "/api/auth/verify-otp", models.VerifyOTPRequest{WorkerID: 9, OTPCode: "000000"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired OTP")
	require.NoError(t, mock.ExpectationsWereMet())
}
