package services

import (
	"log"

	"github.com/Shruthi-d-official/WareHouse/internal/authz"
	"github.com/Shruthi-d-official/WareHouse/internal/models"
	"github.com/Shruthi-d-official/WareHouse/internal/repositories"
)

// AuditService appends an event for every state-changing action. Write failures
// are swallowed and logged: audit is a best-effort side channel and must never
// block the primary workflow.
type AuditService struct {
	Repo *repositories.AuditRepository
}

func NewAuditService(repo *repositories.AuditRepository) *AuditService {
	return &AuditService{Repo: repo}
}

func (s *AuditService) Record(role authz.Role, actorID, actionType, description, origin string) {
	if s == nil || s.Repo == nil {
		return
	}
	event := &models.AuditEvent{
		UserRole:    string(role),
		UserID:      actorID,
		ActionType:  actionType,
		Description: description,
		IPAddress:   origin,
	}
	if err := s.Repo.Create(event); err != nil {
		log.Printf("[audit][record] write failed: action=%s actor=%s err=%v", actionType, actorID, err)
	}
}
