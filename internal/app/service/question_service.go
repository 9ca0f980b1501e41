package service

import (
	"context"
	"encoding/json"
	"fmt"

	"code_arena/internal/app/grader"
	"code_arena/internal/common"
	"code_arena/internal/domain/model"
	"code_arena/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type QuestionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

type CreateQuestionRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Difficulty  string           `json:"difficulty"`
	Language    string           `json:"language"`
	Topic       string           `json:"topic"`
	StarterCode string           `json:"starter_code"`
	Solution    string           `json:"solution"`
	TestCases   []model.TestCase `json:"test_cases"`
	Points      int              `json:"points"`
}

type CreateQuestionResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (s *QuestionService) ListQuestions(ctx context.Context, filter model.QuestionFilter) ([]model.QuestionSummary, error) {
	questions, err := s.questionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	summaries := make([]model.QuestionSummary, 0, len(questions))
	for i := range questions {
		summaries = append(summaries, questions[i].Summary())
	}
	return summaries, nil
}

// GetQuestion returns the detail view with parsed test cases. The reference
// solution is never included.
func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*model.QuestionDetail, error) {
	question, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("question not found: %w", err)
	}

	testCases, err := grader.ParseTestCases(question.TestCases)
	if err != nil {
		return nil, fmt.Errorf("malformed test cases for question %s: %w", question.ID, err)
	}
	if testCases == nil {
		testCases = []model.TestCase{}
	}

	return &model.QuestionDetail{
		ID:          question.ID,
		Title:       question.Title,
		Slug:        question.Slug,
		Description: question.Description,
		Difficulty:  question.Difficulty,
		Language:    question.Language,
		Topic:       question.Topic,
		StarterCode: question.StarterCode,
		TestCases:   testCases,
		Points:      question.Points,
	}, nil
}

// CreateQuestion requires only an authenticated caller; there is no admin
// role yet, which is a known gap.
func (s *QuestionService) CreateQuestion(ctx context.Context, req CreateQuestionRequest) (*CreateQuestionResponse, error) {
	if req.Title == "" || req.Difficulty == "" || req.Language == "" {
		return nil, fmt.Errorf("title, difficulty and language are required: %w", common.ErrBadRequest)
	}

	testCases := req.TestCases
	if testCases == nil {
		testCases = []model.TestCase{}
	}
	encoded, err := json.Marshal(testCases)
	if err != nil {
		return nil, fmt.Errorf("failed to encode test cases: %w", err)
	}

	points := req.Points
	if points == 0 {
		points = 10
	}

	question := &model.Question{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Description: req.Description,
		Difficulty:  model.QuestionDifficulty(req.Difficulty),
		Language:    req.Language,
		Topic:       req.Topic,
		StarterCode: req.StarterCode,
		Solution:    req.Solution,
		TestCases:   string(encoded),
		Points:      points,
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return &CreateQuestionResponse{ID: question.ID, Message: "Question created successfully"}, nil
}
