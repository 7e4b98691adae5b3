package models

import "time"

type Vendor struct {
	ID           int64  `json:"id"`
	AdminID      int64  `json:"admin_id"`
	UserID       string `json:"user_id"`
	PasswordHash string `json:"-"`

	// Set exactly once over the vendor's lifetime, never cleared.
	ApprovedTeamLeaderID *int64 `json:"approved_team_leader_id"`

	CreatedAt time.Time `json:"created_at"`
}
