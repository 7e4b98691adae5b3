package repositories

import (
	"database/sql"
	"fmt"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
)

type VendorRepository struct {
	DB *sql.DB
}

func NewVendorRepository(db *sql.DB) *VendorRepository {
	return &VendorRepository{DB: db}
}

func (r *VendorRepository) Create(adminID int64, userID, passwordHash string) (*models.Vendor, error) {
	const q = `
		INSERT INTO vendors (admin_id, user_id, password_hash)
		VALUES ($1, $2, $3)
		RETURNING vendor_id, created_at
	`
	v := &models.Vendor{AdminID: adminID, UserID: userID, PasswordHash: passwordHash}
	if err := r.DB.QueryRow(q, adminID, userID, passwordHash).Scan(&v.ID, &v.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicateLoginID
		}
		return nil, fmt.Errorf("create vendor: %w", err)
	}
	return v, nil
}

func (r *VendorRepository) GetByUserID(userID string) (*models.Vendor, error) {
	const q = `
		SELECT vendor_id, admin_id, user_id, password_hash, approved_team_leader_id, created_at
		FROM vendors
		WHERE user_id = $1
	`
	return r.scanOne(r.DB.QueryRow(q, userID))
}

func (r *VendorRepository) GetByID(id int64) (*models.Vendor, error) {
	const q = `
		SELECT vendor_id, admin_id, user_id, password_hash, approved_team_leader_id, created_at
		FROM vendors
		WHERE vendor_id = $1
	`
	return r.scanOne(r.DB.QueryRow(q, id))
}

func (r *VendorRepository) scanOne(row *sql.Row) (*models.Vendor, error) {
	var v models.Vendor
	var approved sql.NullInt64
	if err := row.Scan(&v.ID, &v.AdminID, &v.UserID, &v.PasswordHash, &approved, &v.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	if approved.Valid {
		id := approved.Int64
		v.ApprovedTeamLeaderID = &id
	}
	return &v, nil
}

// ApproveTeamLeader applies the one-time approval edge as a single transaction:
// both writes commit together or neither does. The vendor row is locked for the
// duration so concurrent approval attempts serialize and only one can win.
func (r *VendorRepository) ApproveTeamLeader(vendorID, teamLeaderID int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("approve team leader: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var approved sql.NullInt64
	err = tx.QueryRow(
		`SELECT approved_team_leader_id FROM vendors WHERE vendor_id = $1 FOR UPDATE`,
		vendorID,
	).Scan(&approved)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.ErrNotFound
		}
		return fmt.Errorf("approve team leader: lock vendor: %w", err)
	}
	if approved.Valid {
		return models.ErrAlreadyApproved
	}

	res, err := tx.Exec(
		`UPDATE team_leaders SET is_approved = TRUE WHERE team_leader_id = $1 AND vendor_id = $2`,
		teamLeaderID, vendorID,
	)
	if err != nil {
		return fmt.Errorf("approve team leader: update team leader: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("approve team leader: rows affected: %w", err)
	}
	if n == 0 {
		// team leader missing or owned by a different vendor
		return models.ErrNotOwned
	}

	if _, err := tx.Exec(
		`UPDATE vendors SET approved_team_leader_id = $1 WHERE vendor_id = $2`,
		teamLeaderID, vendorID,
	); err != nil {
		return fmt.Errorf("approve team leader: update vendor: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("approve team leader: commit: %w", err)
	}
	return nil
}
