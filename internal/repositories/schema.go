package repositories

import (
	"database/sql"
	"fmt"
)

// Schema is created on startup, mirroring how the deployment has always
// bootstrapped itself. user_id uniqueness is scoped per tier table: a vendor
// and a worker may share the same login identifier.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		admin_id SERIAL PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS vendors (
		vendor_id SERIAL PRIMARY KEY,
		admin_id INTEGER REFERENCES admins(admin_id) ON DELETE CASCADE,
		user_id TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		approved_team_leader_id INTEGER DEFAULT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS team_leaders (
		team_leader_id SERIAL PRIMARY KEY,
		vendor_id INTEGER REFERENCES vendors(vendor_id) ON DELETE CASCADE,
		user_id TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		is_approved BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS workers (
		worker_id SERIAL PRIMARY KEY,
		team_leader_id INTEGER REFERENCES team_leaders(team_leader_id) ON DELETE CASCADE,
		user_id TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		email TEXT NOT NULL,
		is_approved BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS otp_log (
		otp_id SERIAL PRIMARY KEY,
		worker_id INTEGER REFERENCES workers(worker_id) ON DELETE CASCADE,
		otp_code TEXT NOT NULL,
		expiry_time TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bin_master (
		bin_id SERIAL PRIMARY KEY,
		bin_name TEXT UNIQUE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS counting_log (
		log_id SERIAL PRIMARY KEY,
		wh_name TEXT NOT NULL,
		date DATE NOT NULL,
		team_leader_name TEXT NOT NULL,
		worker_username TEXT NOT NULL,
		bin_id INTEGER REFERENCES bin_master(bin_id),
		qty_counted INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS performance_log (
		performance_id SERIAL PRIMARY KEY,
		wh_name TEXT NOT NULL,
		date DATE NOT NULL,
		worker_username TEXT NOT NULL,
		no_of_bins_counted INTEGER NOT NULL,
		no_of_qty_counted INTEGER NOT NULL,
		start_time TIMESTAMPTZ NOT NULL,
		end_time TIMESTAMPTZ NOT NULL,
		efficiency DOUBLE PRECISION DEFAULT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS audit_log (
		action_id SERIAL PRIMARY KEY,
		user_role TEXT NOT NULL,
		user_id TEXT NOT NULL,
		action_type TEXT NOT NULL,
		description TEXT NOT NULL,
		ip_address TEXT,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// SeedAdmin inserts the bootstrap admin account if it does not exist yet.
func SeedAdmin(db *sql.DB, userID, passwordHash string) error {
	const q = `
		INSERT INTO admins (user_id, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := db.Exec(q, userID, passwordHash); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

func SeedBins(db *sql.DB) error {
	for i := 1; i <= 10; i++ {
		name := fmt.Sprintf("BIN-%03d", i)
		if _, err := db.Exec(
			`INSERT INTO bin_master (bin_name) VALUES ($1) ON CONFLICT (bin_name) DO NOTHING`, name,
		); err != nil {
			return fmt.Errorf("seed bins: %w", err)
		}
	}
	return nil
}
