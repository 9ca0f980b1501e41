package database

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		username VARCHAR(100) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		full_name VARCHAR(255) NOT NULL DEFAULT '',
		points INTEGER NOT NULL DEFAULT 0,
		streak_days INTEGER NOT NULL DEFAULT 0,
		last_solve_date TIMESTAMPTZ,
		provider VARCHAR(50) NOT NULL DEFAULT 'email',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id VARCHAR(36) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		difficulty VARCHAR(20) NOT NULL,
		language VARCHAR(50) NOT NULL,
		topic VARCHAR(100) NOT NULL DEFAULT '',
		starter_code TEXT NOT NULL DEFAULT '',
		solution TEXT NOT NULL DEFAULT '',
		test_cases TEXT NOT NULL DEFAULT '[]',
		points INTEGER NOT NULL DEFAULT 10,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS submissions (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(36) NOT NULL REFERENCES users(id),
		question_id VARCHAR(36) NOT NULL REFERENCES questions(id),
		code TEXT NOT NULL DEFAULT '',
		language VARCHAR(50) NOT NULL,
		status VARCHAR(20) NOT NULL,
		score DOUBLE PRECISION NOT NULL DEFAULT 0,
		passed_test_cases INTEGER NOT NULL DEFAULT 0,
		total_test_cases INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS user_progress (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(36) NOT NULL REFERENCES users(id),
		question_id VARCHAR(36) NOT NULL REFERENCES questions(id),
		solved BOOLEAN NOT NULL DEFAULT FALSE,
		best_score DOUBLE PRECISION NOT NULL DEFAULT 0,
		attempts INTEGER NOT NULL DEFAULT 0,
		solved_at TIMESTAMPTZ,
		UNIQUE (user_id, question_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_submissions_user ON submissions(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_user_progress_user ON user_progress(user_id)`,
}

// Migrate creates the schema if it does not exist. Safe to run on every start.
func Migrate(db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("running migration: %w", err)
		}
	}
	return nil
}
