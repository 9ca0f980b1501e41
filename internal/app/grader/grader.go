// Package grader scores submissions against a question's stored test cases.
//
// This is a textual heuristic, not execution: there is no sandbox, so a
// javascript submission counts a test case as passed when the code contains
// both the literal word "return" and the test case's expected value. Every
// other language tag scores zero. A real executor would replace this package.
package grader

import (
	"encoding/json"
	"strings"

	"code_arena/internal/domain/model"
)

type Result struct {
	Status          model.SubmissionStatus
	Score           float64
	PassedTestCases int
	TotalTestCases  int
}

// Grade evaluates code for a question. Malformed stored test-case data yields
// the "error" status with a zero score.
func Grade(question *model.Question, code string) Result {
	testCases, err := ParseTestCases(question.TestCases)
	if err != nil {
		return Result{Status: model.StatusError}
	}

	passed := 0
	total := len(testCases)

	if strings.EqualFold(question.Language, "javascript") {
		for _, tc := range testCases {
			if strings.Contains(code, "return") && strings.Contains(code, tc.Expected) {
				passed++
			}
		}
	}

	result := Result{
		Status:          model.StatusFailed,
		PassedTestCases: passed,
		TotalTestCases:  total,
	}
	if total > 0 {
		result.Score = float64(passed) / float64(total) * 100
	}
	if passed == total && total > 0 {
		result.Status = model.StatusPassed
	}
	return result
}

// ParseTestCases decodes the JSON-serialized test cases stored on a question.
// An empty payload means no test cases.
func ParseTestCases(raw string) ([]model.TestCase, error) {
	if raw == "" {
		return nil, nil
	}
	var testCases []model.TestCase
	if err := json.Unmarshal([]byte(raw), &testCases); err != nil {
		return nil, err
	}
	return testCases, nil
}
