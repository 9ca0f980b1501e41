package model

type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	Username   string `json:"username"`
	Points     int    `json:"points"`
	StreakDays int    `json:"streak_days"`
}
