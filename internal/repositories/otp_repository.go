package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
)

type OTPRepository struct {
	DB *sql.DB
}

func NewOTPRepository(db *sql.DB) *OTPRepository {
	return &OTPRepository{DB: db}
}

// Create inserts a fresh pending record. Workers accumulate records over time;
// old rows are never purged here, only filtered out at verification time.
func (r *OTPRepository) Create(workerID int64, code string, expiryTime time.Time) (*models.OTPRecord, error) {
	const q = `
		INSERT INTO otp_log (worker_id, otp_code, expiry_time, status)
		VALUES ($1, $2, $3, 'pending')
		RETURNING otp_id, created_at
	`
	rec := &models.OTPRecord{
		WorkerID:   workerID,
		Code:       code,
		ExpiryTime: expiryTime,
		Status:     models.OTPStatusPending,
	}
	if err := r.DB.QueryRow(q, workerID, code, expiryTime).Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return nil, fmt.Errorf("create otp record: %w", err)
	}
	return rec, nil
}

// GetLatestPending returns the most recently created pending record for the
// worker with a matching code, or nil when there is none.
func (r *OTPRepository) GetLatestPending(workerID int64, code string) (*models.OTPRecord, error) {
	const q = `
		SELECT otp_id, worker_id, otp_code, expiry_time, status, created_at
		FROM otp_log
		WHERE worker_id = $1 AND otp_code = $2 AND status = 'pending'
		ORDER BY created_at DESC
		LIMIT 1
	`
	var rec models.OTPRecord
	err := r.DB.QueryRow(q, workerID, code).Scan(
		&rec.ID, &rec.WorkerID, &rec.Code, &rec.ExpiryTime, &rec.Status, &rec.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest pending otp: %w", err)
	}
	return &rec, nil
}

// MarkApproved flips pending -> approved. The status predicate makes the
// consumption a compare-and-set: when two verify calls race, only one sees
// a row flip, the other gets false.
func (r *OTPRepository) MarkApproved(otpID int64) (bool, error) {
	res, err := r.DB.Exec(
		`UPDATE otp_log SET status = 'approved' WHERE otp_id = $1 AND status = 'pending'`,
		otpID,
	)
	if err != nil {
		return false, fmt.Errorf("mark otp approved: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark otp approved: rows affected: %w", err)
	}
	return n == 1, nil
}
