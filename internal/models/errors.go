package models

import "errors"

// Domain error taxonomy shared by repositories, services and handlers.
// Login and OTP failures are deliberately opaque so callers cannot
// enumerate accounts or distinguish wrong/expired/consumed codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateLoginID   = errors.New("user id already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotApproved        = errors.New("account not approved yet")
	ErrAlreadyApproved    = errors.New("team leader already approved")
	ErrNotOwned           = errors.New("not found or not authorized")
	ErrOTPInvalid         = errors.New("invalid or expired otp")
)
