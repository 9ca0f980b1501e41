package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"code_arena/internal/domain/model"
	"code_arena/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const leaderboardSize = 10
const leaderboardCacheKey = "leaderboard:top"

type ProgressService struct {
	progressRepo   repository.ProgressRepository
	submissionRepo repository.SubmissionRepository
	questionRepo   repository.QuestionRepository
	userRepo       repository.UserRepository
	rdb            *redis.Client // nil disables caching
	cacheTTL       time.Duration
}

func NewProgressService(
	progressRepo repository.ProgressRepository,
	submissionRepo repository.SubmissionRepository,
	questionRepo repository.QuestionRepository,
	userRepo repository.UserRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
) *ProgressService {
	return &ProgressService{
		progressRepo:   progressRepo,
		submissionRepo: submissionRepo,
		questionRepo:   questionRepo,
		userRepo:       userRepo,
		rdb:            rdb,
		cacheTTL:       cacheTTL,
	}
}

func (s *ProgressService) GetUserProgress(ctx context.Context, user *model.User) (*model.ProgressReport, error) {
	solved, err := s.progressRepo.CountSolvedByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count solved questions: %w", err)
	}
	totalQuestions, err := s.questionRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	submissions, err := s.submissionRepo.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}

	accuracy := 0.0
	if submissions > 0 {
		accuracy = float64(solved) / float64(submissions) * 100
	}

	return &model.ProgressReport{
		User: user.Summary(),
		Stats: model.ProgressStats{
			SolvedQuestions:  solved,
			TotalQuestions:   totalQuestions,
			TotalSubmissions: submissions,
			Accuracy:         accuracy,
		},
	}, nil
}

// GetLeaderboard returns the top users by points, rank-annotated. Entries are
// served from Redis when fresh; a cold or unavailable cache falls back to SQL.
func (s *ProgressService) GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	if entries, ok := s.cachedLeaderboard(ctx); ok {
		return entries, nil
	}

	users, err := s.userRepo.TopByPoints(ctx, leaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	entries := rankUsers(users)
	s.storeLeaderboard(ctx, entries)
	return entries, nil
}

func rankUsers(users []model.User) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, model.LeaderboardEntry{
			Rank:       i + 1,
			Username:   u.Username,
			Points:     u.Points,
			StreakDays: u.StreakDays,
		})
	}
	return entries
}

func (s *ProgressService) cachedLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, bool) {
	if s.rdb == nil {
		return nil, false
	}
	payload, err := s.rdb.Get(ctx, leaderboardCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("leaderboard cache read failed: %v", err)
		}
		return nil, false
	}
	var entries []model.LeaderboardEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (s *ProgressService) storeLeaderboard(ctx context.Context, entries []model.LeaderboardEntry) {
	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, leaderboardCacheKey, payload, s.cacheTTL).Err(); err != nil {
		log.Printf("leaderboard cache write failed: %v", err)
	}
}
