package models

import "time"

const (
	OTPStatusPending  = "pending"
	OTPStatusApproved = "approved" // terminal, never reset back to pending
)

type OTPRecord struct {
	ID         int64     `json:"id"`
	WorkerID   int64     `json:"worker_id"`
	Code       string    `json:"-"` // 6-digit numeric, leading zeros allowed
	ExpiryTime time.Time `json:"expiry_time"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
