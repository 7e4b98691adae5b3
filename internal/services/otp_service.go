package services

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
	"github.com/Shruthi-d-official/WareHouse/internal/repositories"
)

const defaultOTPTTL = 10 * time.Minute

type OTPService struct {
	Repo    *repositories.OTPRepository
	Workers *repositories.WorkerRepository
	Email   EmailService
	CodeTTL time.Duration // 0 -> defaultOTPTTL
}

func NewOTPService(repo *repositories.OTPRepository, workers *repositories.WorkerRepository, email EmailService, codeTTL time.Duration) *OTPService {
	if codeTTL <= 0 {
		codeTTL = defaultOTPTTL
	}
	return &OTPService{
		Repo:    repo,
		Workers: workers,
		Email:   email,
		CodeTTL: codeTTL,
	}
}

// generateOTPCode returns a uniformly random 6-digit code, leading zeros allowed.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate otp code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Issue stores a fresh pending record and hands the code off to email delivery
// in the background. Delivery failure does not roll the record back: the worker
// can request a new code if the mail never arrives. Concurrent issues for the
// same worker are allowed; whichever code reaches the user can be verified.
func (s *OTPService) Issue(workerID int64) (string, error) {
	worker, err := s.Workers.GetByID(workerID)
	if err != nil {
		return "", err
	}
	if worker == nil {
		return "", models.ErrNotFound
	}

	code, err := generateOTPCode()
	if err != nil {
		return "", err
	}
	expiry := time.Now().Add(s.CodeTTL)

	if _, err := s.Repo.Create(workerID, code, expiry); err != nil {
		return "", err
	}

	go func(email, code string) {
		if s.Email == nil {
			return
		}
		if err := s.Email.SendOTPEmail(email, code); err != nil {
			log.Printf("[otp][send] delivery failed: worker_id=%d err=%v", workerID, err)
		}
	}(worker.Email, code)

	return code, nil
}

// Verify consumes the freshest pending record matching the code. All failure
// modes (wrong code, expired, already used) collapse into one opaque error so
// the response cannot be used as an oracle.
func (s *OTPService) Verify(workerID int64, code string) (*models.Worker, error) {
	rec, err := s.Repo.GetLatestPending(workerID, code)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.ErrOTPInvalid
	}
	if time.Now().After(rec.ExpiryTime) {
		return nil, models.ErrOTPInvalid
	}

	consumed, err := s.Repo.MarkApproved(rec.ID)
	if err != nil {
		return nil, err
	}
	if !consumed {
		// lost the race against a concurrent verify
		return nil, models.ErrOTPInvalid
	}

	worker, err := s.Workers.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, models.ErrOTPInvalid
	}
	return worker, nil
}
