package models

import "time"

type Worker struct {
	ID           int64     `json:"id"`
	TeamLeaderID int64     `json:"team_leader_id"`
	UserID       string    `json:"user_id"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"` // OTP delivery address
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
}
