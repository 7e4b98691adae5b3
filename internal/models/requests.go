package models

// LoginRequest — role selects which tier table the credentials are checked against.
type LoginRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type SendOTPRequest struct {
	WorkerID int64 `json:"worker_id" binding:"required"`
}

type VerifyOTPRequest struct {
	WorkerID int64  `json:"worker_id" binding:"required"`
	OTPCode  string `json:"otp_code" binding:"required"`
}

type CreateVendorRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type CreateTeamLeaderRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type CreateWorkerRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
}

type ApproveTeamLeaderRequest struct {
	TeamLeaderID int64 `json:"team_leader_id" binding:"required"`
}

type ApproveWorkerRequest struct {
	WorkerID int64 `json:"worker_id" binding:"required"`
}

type StartCountingRequest struct {
	WarehouseName string `json:"wh_name" binding:"required"`
}

type CountingEntryRequest struct {
	WarehouseName string `json:"wh_name" binding:"required"`
	BinID         int64  `json:"bin_id" binding:"required"`
	QtyCounted    *int   `json:"qty_counted" binding:"required,min=0"`
}

type EndCountingRequest struct {
	WarehouseName string `json:"wh_name" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"` // RFC3339
}
