package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"code_arena/internal/app/grader"
	"code_arena/internal/common"
	"code_arena/internal/domain/model"
	"code_arena/internal/domain/repository"

	"github.com/google/uuid"
)

type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
	progressRepo   repository.ProgressRepository
	questionRepo   repository.QuestionRepository
	userRepo       repository.UserRepository
	db             *sql.DB // For transactions
	now            func() time.Time
}

func NewSubmissionService(
	subRepo repository.SubmissionRepository,
	progressRepo repository.ProgressRepository,
	questionRepo repository.QuestionRepository,
	userRepo repository.UserRepository,
	db *sql.DB,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: subRepo,
		progressRepo:   progressRepo,
		questionRepo:   questionRepo,
		userRepo:       userRepo,
		db:             db,
		now:            time.Now,
	}
}

type SubmitRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// Submit grades the code and records the attempt. The submission insert,
// progress upsert and any points/streak update commit in one transaction so
// a submission row never exists without its progress row.
func (s *SubmissionService) Submit(ctx context.Context, userID, questionID string, req SubmitRequest) (*model.SubmissionResult, error) {
	if req.Code == "" {
		return nil, fmt.Errorf("code is required: %w", common.ErrBadRequest)
	}

	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("question not found: %w", err)
	}

	graded := grader.Grade(question, req.Code)
	now := s.now().UTC()

	language := req.Language
	if language == "" {
		language = question.Language
	}

	submission := &model.Submission{
		ID:              uuid.NewString(),
		UserID:          userID,
		QuestionID:      questionID,
		Code:            req.Code,
		Language:        language,
		Status:          graded.Status,
		Score:           graded.Score,
		PassedTestCases: graded.PassedTestCases,
		TotalTestCases:  graded.TotalTestCases,
	}

	solved := graded.Status == model.StatusPassed
	progress := &model.UserProgress{
		ID:         uuid.NewString(),
		UserID:     userID,
		QuestionID: questionID,
		Solved:     solved,
		BestScore:  graded.Score,
	}
	if solved {
		progress.SolvedAt = &now
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, common.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.submissionRepo.Create(ctx, tx, submission); err != nil {
		return nil, common.Errorf("failed to create submission: %w", err)
	}
	if err := s.progressRepo.Upsert(ctx, tx, progress); err != nil {
		return nil, common.Errorf("failed to update progress: %w", err)
	}

	pointsEarned := 0
	if solved {
		// Lock the user row so concurrent passing submissions serialize.
		user, err := s.userRepo.FindByIDForUpdate(ctx, tx, userID)
		if err != nil {
			return nil, common.Errorf("failed to load user: %w", err)
		}
		streak := nextStreak(user.StreakDays, user.LastSolveDate, now)
		if err := s.userRepo.ApplySolve(ctx, tx, userID, question.Points, streak, now); err != nil {
			return nil, common.Errorf("failed to apply solve: %w", err)
		}
		pointsEarned = question.Points
	}

	if err := tx.Commit(); err != nil {
		return nil, common.Errorf("failed to commit transaction: %w", err)
	}

	return &model.SubmissionResult{
		Status:          graded.Status,
		Score:           graded.Score,
		PassedTestCases: graded.PassedTestCases,
		TotalTestCases:  graded.TotalTestCases,
		PointsEarned:    pointsEarned,
	}, nil
}

// nextStreak computes the consecutive-day counter after a solve at now.
// Solving on consecutive calendar days increments it, a second solve on the
// same day leaves it unchanged, anything else resets it to 1.
func nextStreak(current int, lastSolve *time.Time, now time.Time) int {
	if lastSolve == nil {
		return 1
	}
	today := now.UTC().Truncate(24 * time.Hour)
	last := lastSolve.UTC().Truncate(24 * time.Hour)

	switch {
	case last.Equal(today.AddDate(0, 0, -1)):
		return current + 1
	case last.Equal(today):
		return current
	default:
		return 1
	}
}
