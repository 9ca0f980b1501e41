package model

import "time"

const (
	ProviderEmail    = "email"
	ProviderGoogle   = "google"
	ProviderGithub   = "github"
	ProviderLinkedin = "linkedin"
)

type User struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Username      string     `json:"username"`
	PasswordHash  string     `json:"-"` // Not exposed
	FullName      string     `json:"full_name"`
	Points        int        `json:"points"`
	StreakDays    int        `json:"streak_days"`
	LastSolveDate *time.Time `json:"last_solve_date,omitempty"`
	Provider      string     `json:"provider"`
	CreatedAt     time.Time  `json:"created_at"`
}

// UserSummary is the public shape returned from auth and progress endpoints.
type UserSummary struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
	Points     int    `json:"points"`
	StreakDays int    `json:"streak_days"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		FullName:   u.FullName,
		Points:     u.Points,
		StreakDays: u.StreakDays,
	}
}
