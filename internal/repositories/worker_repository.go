package repositories

import (
	"database/sql"
	"fmt"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
)

type WorkerRepository struct {
	DB *sql.DB
}

func NewWorkerRepository(db *sql.DB) *WorkerRepository {
	return &WorkerRepository{DB: db}
}

func (r *WorkerRepository) Create(teamLeaderID int64, userID, passwordHash, email string) (*models.Worker, error) {
	const q = `
		INSERT INTO workers (team_leader_id, user_id, password_hash, email)
		VALUES ($1, $2, $3, $4)
		RETURNING worker_id, created_at
	`
	w := &models.Worker{TeamLeaderID: teamLeaderID, UserID: userID, PasswordHash: passwordHash, Email: email}
	if err := r.DB.QueryRow(q, teamLeaderID, userID, passwordHash, email).Scan(&w.ID, &w.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicateLoginID
		}
		return nil, fmt.Errorf("create worker: %w", err)
	}
	return w, nil
}

func (r *WorkerRepository) GetByUserID(userID string) (*models.Worker, error) {
	const q = `
		SELECT worker_id, team_leader_id, user_id, password_hash, email, is_approved, created_at
		FROM workers
		WHERE user_id = $1
	`
	return r.scanOne(r.DB.QueryRow(q, userID))
}

func (r *WorkerRepository) GetByID(id int64) (*models.Worker, error) {
	const q = `
		SELECT worker_id, team_leader_id, user_id, password_hash, email, is_approved, created_at
		FROM workers
		WHERE worker_id = $1
	`
	return r.scanOne(r.DB.QueryRow(q, id))
}

func (r *WorkerRepository) scanOne(row *sql.Row) (*models.Worker, error) {
	var w models.Worker
	err := row.Scan(&w.ID, &w.TeamLeaderID, &w.UserID, &w.PasswordHash, &w.Email, &w.IsApproved, &w.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}
	return &w, nil
}

// Approve sets is_approved for a worker owned by the given team leader.
// The ownership predicate is part of the UPDATE so a cross-tier attempt
// never mutates state.
func (r *WorkerRepository) Approve(workerID, teamLeaderID int64) error {
	res, err := r.DB.Exec(
		`UPDATE workers SET is_approved = TRUE WHERE worker_id = $1 AND team_leader_id = $2`,
		workerID, teamLeaderID,
	)
	if err != nil {
		return fmt.Errorf("approve worker: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("approve worker: rows affected: %w", err)
	}
	if n == 0 {
		return models.ErrNotOwned
	}
	return nil
}

// GetTeamLeaderName resolves the login id of the team leader owning a worker.
func (r *WorkerRepository) GetTeamLeaderName(workerID int64) (string, error) {
	const q = `
		SELECT tl.user_id
		FROM workers w
		JOIN team_leaders tl ON w.team_leader_id = tl.team_leader_id
		WHERE w.worker_id = $1
	`
	var name string
	if err := r.DB.QueryRow(q, workerID).Scan(&name); err != nil {
		if err == sql.ErrNoRows {
			return "", models.ErrNotFound
		}
		return "", fmt.Errorf("get team leader name: %w", err)
	}
	return name, nil
}
