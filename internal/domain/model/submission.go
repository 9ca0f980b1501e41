package model

import "time"

type SubmissionStatus string

const (
	StatusPassed SubmissionStatus = "passed"
	StatusFailed SubmissionStatus = "failed"
	StatusError  SubmissionStatus = "error" // grading itself failed (malformed test-case data)
)

type Submission struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	QuestionID      string           `json:"question_id"`
	Code            string           `json:"code"`
	Language        string           `json:"language"`
	Status          SubmissionStatus `json:"status"`
	Score           float64          `json:"score"`
	PassedTestCases int              `json:"passed_test_cases"`
	TotalTestCases  int              `json:"total_test_cases"`
	CreatedAt       time.Time        `json:"created_at"`
}

// SubmissionResult is what the submit endpoint returns to the caller.
type SubmissionResult struct {
	Status          SubmissionStatus `json:"status"`
	Score           float64          `json:"score"`
	PassedTestCases int              `json:"passed_test_cases"`
	TotalTestCases  int              `json:"total_test_cases"`
	PointsEarned    int              `json:"points_earned"`
}
