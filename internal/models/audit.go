package models

import "time"

// AuditEvent — immutable append-only record; never updated or deleted.
type AuditEvent struct {
	ID          int64     `json:"id"`
	UserRole    string    `json:"user_role"`
	UserID      string    `json:"user_id"`
	ActionType  string    `json:"action_type"`
	Description string    `json:"description"`
	IPAddress   string    `json:"ip_address"`
	Timestamp   time.Time `json:"timestamp"`
}
