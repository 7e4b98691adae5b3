package services

import (
	"fmt"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
	"github.com/Shruthi-d-official/WareHouse/internal/repositories"
)

// TeamLeaderService — a team leader creates workers and approves them
// individually (no one-per-leader cap, unlike the vendor edge).
type TeamLeaderService struct {
	Workers  *repositories.WorkerRepository
	Auth     *AuthService
	Notifier *TelegramService
}

func NewTeamLeaderService(workers *repositories.WorkerRepository, auth *AuthService, notifier *TelegramService) *TeamLeaderService {
	return &TeamLeaderService{Workers: workers, Auth: auth, Notifier: notifier}
}

func (s *TeamLeaderService) CreateWorker(teamLeaderID int64, userID, password, email string) (*models.Worker, error) {
	hash, err := s.Auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	worker, err := s.Workers.Create(teamLeaderID, userID, hash, email)
	if err != nil {
		return nil, err
	}
	s.Notifier.Notify(fmt.Sprintf("New worker created: %s", worker.UserID))
	return worker, nil
}

func (s *TeamLeaderService) ApproveWorker(teamLeaderID, workerID int64) error {
	if err := s.Workers.Approve(workerID, teamLeaderID); err != nil {
		return err
	}
	s.Notifier.Notify(fmt.Sprintf("Worker %d approved by team leader %d", workerID, teamLeaderID))
	return nil
}
