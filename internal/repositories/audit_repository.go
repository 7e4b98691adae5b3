package repositories

import (
	"database/sql"
	"fmt"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
)

type AuditRepository struct {
	DB *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{DB: db}
}

// Create appends one event. audit_log rows are never updated or deleted.
func (r *AuditRepository) Create(event *models.AuditEvent) error {
	const q = `
		INSERT INTO audit_log (user_role, user_id, action_type, description, ip_address)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.DB.Exec(q,
		event.UserRole, event.UserID, event.ActionType, event.Description, event.IPAddress,
	); err != nil {
		return fmt.Errorf("create audit event: %w", err)
	}
	return nil
}
