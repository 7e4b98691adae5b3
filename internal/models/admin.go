package models

import "time"

type Admin struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	PasswordHash string    `json:"-"` // never serialized
	CreatedAt    time.Time `json:"created_at"`
}
