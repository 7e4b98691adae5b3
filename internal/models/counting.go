package models

import "time"

type Bin struct {
	ID   int64  `json:"bin_id"`
	Name string `json:"bin_name"`
}

type CountingEntry struct {
	ID             int64     `json:"log_id"`
	WarehouseName  string    `json:"wh_name"`
	Date           string    `json:"date"` // YYYY-MM-DD
	TeamLeaderName string    `json:"team_leader_name"`
	WorkerUsername string    `json:"worker_username"`
	BinID          int64     `json:"bin_id"`
	QtyCounted     int       `json:"qty_counted"`
	CreatedAt      time.Time `json:"created_at"`
}

type PerformanceRecord struct {
	ID             int64     `json:"performance_id"`
	WarehouseName  string    `json:"wh_name"`
	Date           string    `json:"date"`
	WorkerUsername string    `json:"worker_username"`
	BinsCounted    int       `json:"no_of_bins_counted"`
	QtyCounted     int       `json:"no_of_qty_counted"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Efficiency     float64   `json:"efficiency"` // bins per hour
}
