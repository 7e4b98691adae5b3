package repositories

import (
	"database/sql"
	"fmt"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
)

type AdminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) GetByUserID(userID string) (*models.Admin, error) {
	const q = `
		SELECT admin_id, user_id, password_hash, created_at
		FROM admins
		WHERE user_id = $1
	`
	var a models.Admin
	if err := r.DB.QueryRow(q, userID).Scan(&a.ID, &a.UserID, &a.PasswordHash, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin by user_id: %w", err)
	}
	return &a, nil
}
