package repositories

import (
	"database/sql"
	"fmt"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
)

type TeamLeaderRepository struct {
	DB *sql.DB
}

func NewTeamLeaderRepository(db *sql.DB) *TeamLeaderRepository {
	return &TeamLeaderRepository{DB: db}
}

func (r *TeamLeaderRepository) Create(vendorID int64, userID, passwordHash string) (*models.TeamLeader, error) {
	const q = `
		INSERT INTO team_leaders (vendor_id, user_id, password_hash)
		VALUES ($1, $2, $3)
		RETURNING team_leader_id, created_at
	`
	tl := &models.TeamLeader{VendorID: vendorID, UserID: userID, PasswordHash: passwordHash}
	if err := r.DB.QueryRow(q, vendorID, userID, passwordHash).Scan(&tl.ID, &tl.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicateLoginID
		}
		return nil, fmt.Errorf("create team leader: %w", err)
	}
	return tl, nil
}

func (r *TeamLeaderRepository) GetByUserID(userID string) (*models.TeamLeader, error) {
	const q = `
		SELECT team_leader_id, vendor_id, user_id, password_hash, is_approved, created_at
		FROM team_leaders
		WHERE user_id = $1
	`
	var tl models.TeamLeader
	err := r.DB.QueryRow(q, userID).Scan(
		&tl.ID, &tl.VendorID, &tl.UserID, &tl.PasswordHash, &tl.IsApproved, &tl.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get team leader by user_id: %w", err)
	}
	return &tl, nil
}
