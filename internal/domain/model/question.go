package model

import "time"

type QuestionDifficulty string

const (
	DifficultyEasy   QuestionDifficulty = "Easy"
	DifficultyMedium QuestionDifficulty = "Medium"
	DifficultyHard   QuestionDifficulty = "Hard"
)

type Question struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Slug        string             `json:"slug"`
	Description string             `json:"description"`
	Difficulty  QuestionDifficulty `json:"difficulty"`
	Language    string             `json:"language"`
	Topic       string             `json:"topic"`
	StarterCode string             `json:"starter_code"`
	Solution    string             `json:"-"` // Never exposed through the API
	TestCases   string             `json:"-"` // JSON-encoded []TestCase, parsed on read
	Points      int                `json:"points"`
	CreatedAt   time.Time          `json:"created_at"`
}

// TestCase is one input/expected-output pair of a question.
type TestCase struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
}

// QuestionSummary is the list view: no description, starter code or test cases.
type QuestionSummary struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Slug       string             `json:"slug"`
	Difficulty QuestionDifficulty `json:"difficulty"`
	Language   string             `json:"language"`
	Topic      string             `json:"topic"`
	Points     int                `json:"points"`
}

func (q *Question) Summary() QuestionSummary {
	return QuestionSummary{
		ID:         q.ID,
		Title:      q.Title,
		Slug:       q.Slug,
		Difficulty: q.Difficulty,
		Language:   q.Language,
		Topic:      q.Topic,
		Points:     q.Points,
	}
}

// QuestionDetail includes everything a solver needs, minus the solution.
type QuestionDetail struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Slug        string             `json:"slug"`
	Description string             `json:"description"`
	Difficulty  QuestionDifficulty `json:"difficulty"`
	Language    string             `json:"language"`
	Topic       string             `json:"topic"`
	StarterCode string             `json:"starter_code"`
	TestCases   []TestCase         `json:"test_cases"`
	Points      int                `json:"points"`
}

// QuestionFilter holds the optional, conjunctive list filters.
type QuestionFilter struct {
	Language   string
	Difficulty string
	Topic      string
}
