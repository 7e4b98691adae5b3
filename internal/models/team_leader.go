package models

import "time"

type TeamLeader struct {
	ID           int64     `json:"id"`
	VendorID     int64     `json:"vendor_id"`
	UserID       string    `json:"user_id"`
	PasswordHash string    `json:"-"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
}
