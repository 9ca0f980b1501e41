package model

import "time"

// UserProgress is the per (user, question) aggregate. One row per pair;
// best_score is non-decreasing and solved is sticky once true.
type UserProgress struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	QuestionID string     `json:"question_id"`
	Solved     bool       `json:"solved"`
	BestScore  float64    `json:"best_score"`
	Attempts   int        `json:"attempts"`
	SolvedAt   *time.Time `json:"solved_at,omitempty"`
}

type ProgressStats struct {
	SolvedQuestions  int     `json:"solved_questions"`
	TotalQuestions   int     `json:"total_questions"`
	TotalSubmissions int     `json:"total_submissions"`
	Accuracy         float64 `json:"accuracy"`
}

type ProgressReport struct {
	User  UserSummary   `json:"user"`
	Stats ProgressStats `json:"stats"`
}
