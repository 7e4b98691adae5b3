package services

import (
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Shruthi-d-official/WareHouse/internal/authz"
	"github.com/Shruthi-d-official/WareHouse/internal/models"
	"github.com/Shruthi-d-official/WareHouse/internal/repositories"
)

// credentialRecord is the common shape produced by the per-tier lookups.
type credentialRecord struct {
	ID           int64
	UserID       string
	PasswordHash string
	Approved     bool
}

// LoginResult is either a signed session token, or an OTP challenge when the
// worker tier logs in (token comes later through VerifyOTP).
type LoginResult struct {
	Token       string     `json:"token,omitempty"`
	RequiresOTP bool       `json:"requiresOTP,omitempty"`
	WorkerID    int64      `json:"workerId,omitempty"`
	ID          int64      `json:"id"`
	UserID      string     `json:"user_id"`
	Role        authz.Role `json:"role"`
}

type AuthService struct {
	Admins      *repositories.AdminRepository
	Vendors     *repositories.VendorRepository
	TeamLeaders *repositories.TeamLeaderRepository
	Workers     *repositories.WorkerRepository
	OTP         *OTPService
	Tokens      *TokenService
}

func NewAuthService(
	admins *repositories.AdminRepository,
	vendors *repositories.VendorRepository,
	teamLeaders *repositories.TeamLeaderRepository,
	workers *repositories.WorkerRepository,
	otp *OTPService,
	tokens *TokenService,
) *AuthService {
	return &AuthService{
		Admins:      admins,
		Vendors:     vendors,
		TeamLeaders: teamLeaders,
		Workers:     workers,
		OTP:         otp,
		Tokens:      tokens,
	}
}

func (s *AuthService) HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// lookupCredential dispatches over the closed role set. Each arm carries its
// own typed repository call; a role outside the set cannot reach here because
// authz.ParseRole runs before any store access.
func (s *AuthService) lookupCredential(role authz.Role, userID string) (*credentialRecord, error) {
	switch role {
	case authz.RoleAdmin:
		a, err := s.Admins.GetByUserID(userID)
		if err != nil || a == nil {
			return nil, err
		}
		return &credentialRecord{ID: a.ID, UserID: a.UserID, PasswordHash: a.PasswordHash, Approved: true}, nil
	case authz.RoleVendor:
		v, err := s.Vendors.GetByUserID(userID)
		if err != nil || v == nil {
			return nil, err
		}
		return &credentialRecord{ID: v.ID, UserID: v.UserID, PasswordHash: v.PasswordHash, Approved: true}, nil
	case authz.RoleTeamLeader:
		tl, err := s.TeamLeaders.GetByUserID(userID)
		if err != nil || tl == nil {
			return nil, err
		}
		return &credentialRecord{ID: tl.ID, UserID: tl.UserID, PasswordHash: tl.PasswordHash, Approved: tl.IsApproved}, nil
	case authz.RoleWorker:
		w, err := s.Workers.GetByUserID(userID)
		if err != nil || w == nil {
			return nil, err
		}
		return &credentialRecord{ID: w.ID, UserID: w.UserID, PasswordHash: w.PasswordHash, Approved: w.IsApproved}, nil
	default:
		return nil, fmt.Errorf("lookup credential: unknown role %q", role)
	}
}

// Login verifies credentials, gates on the approval edge, and either issues a
// session token or starts the worker OTP challenge. Unknown user and wrong
// password collapse into the same opaque error.
func (s *AuthService) Login(role authz.Role, userID, password string) (*LoginResult, error) {
	userID = strings.TrimSpace(userID)

	rec, err := s.lookupCredential(role, userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	if role.RequiresApproval() && !rec.Approved {
		return nil, models.ErrNotApproved
	}

	if role == authz.RoleWorker {
		if _, err := s.OTP.Issue(rec.ID); err != nil {
			return nil, err
		}
		log.Printf("[auth][login] otp challenge started for worker_id=%d", rec.ID)
		return &LoginResult{
			RequiresOTP: true,
			WorkerID:    rec.ID,
			ID:          rec.ID,
			UserID:      rec.UserID,
			Role:        role,
		}, nil
	}

	token, err := s.Tokens.Issue(role, rec.ID, rec.UserID)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	return &LoginResult{
		Token:  token,
		ID:     rec.ID,
		UserID: rec.UserID,
		Role:   role,
	}, nil
}

// VerifyOTP completes the worker second factor and issues the session token.
func (s *AuthService) VerifyOTP(workerID int64, code string) (*LoginResult, error) {
	worker, err := s.OTP.Verify(workerID, code)
	if err != nil {
		return nil, err
	}

	token, err := s.Tokens.Issue(authz.RoleWorker, worker.ID, worker.UserID)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	return &LoginResult{
		Token:  token,
		ID:     worker.ID,
		UserID: worker.UserID,
		Role:   authz.RoleWorker,
	}, nil
}

// ResendOTP issues a fresh code for an existing worker.
func (s *AuthService) ResendOTP(workerID int64) error {
	_, err := s.OTP.Issue(workerID)
	return err
}
