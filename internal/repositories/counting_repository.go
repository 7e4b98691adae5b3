package repositories

import (
	"database/sql"
	"fmt"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
)

type CountingRepository struct {
	DB *sql.DB
}

func NewCountingRepository(db *sql.DB) *CountingRepository {
	return &CountingRepository{DB: db}
}

func (r *CountingRepository) CreateEntry(entry *models.CountingEntry) (int64, error) {
	const q = `
		INSERT INTO counting_log (wh_name, date, team_leader_name, worker_username, bin_id, qty_counted)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING log_id
	`
	if err := r.DB.QueryRow(q,
		entry.WarehouseName, entry.Date, entry.TeamLeaderName, entry.WorkerUsername, entry.BinID, entry.QtyCounted,
	).Scan(&entry.ID); err != nil {
		return 0, fmt.Errorf("create counting entry: %w", err)
	}
	return entry.ID, nil
}

// SessionTotals sums the worker's counting activity for one warehouse and day.
func (r *CountingRepository) SessionTotals(workerUsername, whName, date string) (bins int, qty int, err error) {
	const q = `
		SELECT COUNT(*), COALESCE(SUM(qty_counted), 0)
		FROM counting_log
		WHERE worker_username = $1 AND wh_name = $2 AND date = $3
	`
	if err := r.DB.QueryRow(q, workerUsername, whName, date).Scan(&bins, &qty); err != nil && err != sql.ErrNoRows {
		return 0, 0, fmt.Errorf("session totals: %w", err)
	}
	return bins, qty, nil
}

func (r *CountingRepository) CreatePerformance(rec *models.PerformanceRecord) error {
	const q = `
		INSERT INTO performance_log (wh_name, date, worker_username, no_of_bins_counted, no_of_qty_counted, start_time, end_time, efficiency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING performance_id
	`
	if err := r.DB.QueryRow(q,
		rec.WarehouseName, rec.Date, rec.WorkerUsername, rec.BinsCounted, rec.QtyCounted,
		rec.StartTime, rec.EndTime, rec.Efficiency,
	).Scan(&rec.ID); err != nil {
		return fmt.Errorf("create performance record: %w", err)
	}
	return nil
}
