package service

import (
	"context"
	"database/sql"
	"testing"

	"code_arena/internal/domain/model"
)

type fakeSubmissionRepo struct {
	countByUser map[string]int
}

func (r *fakeSubmissionRepo) Create(ctx context.Context, tx *sql.Tx, sub *model.Submission) error {
	if r.countByUser == nil {
		r.countByUser = map[string]int{}
	}
	r.countByUser[sub.UserID]++
	return nil
}

func (r *fakeSubmissionRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	return r.countByUser[userID], nil
}

type fakeProgressRepo struct {
	solvedByUser map[string]int
}

func (r *fakeProgressRepo) Upsert(ctx context.Context, tx *sql.Tx, p *model.UserProgress) error {
	if p.Solved {
		if r.solvedByUser == nil {
			r.solvedByUser = map[string]int{}
		}
		r.solvedByUser[p.UserID]++
	}
	return nil
}

func (r *fakeProgressRepo) CountSolvedByUser(ctx context.Context, userID string) (int, error) {
	return r.solvedByUser[userID], nil
}

func TestGetUserProgressStats(t *testing.T) {
	user := &model.User{ID: "u1", Username: "alice", Points: 30, StreakDays: 2}
	questionRepo := &fakeQuestionRepo{questions: []model.Question{{ID: "q1"}, {ID: "q2"}, {ID: "q3"}, {ID: "q4"}}}
	submissionRepo := &fakeSubmissionRepo{countByUser: map[string]int{"u1": 8}}
	progressRepo := &fakeProgressRepo{solvedByUser: map[string]int{"u1": 2}}

	svc := NewProgressService(progressRepo, submissionRepo, questionRepo, newFakeUserRepo(), nil, 0)

	report, err := svc.GetUserProgress(context.Background(), user)
	if err != nil {
		t.Fatalf("GetUserProgress: %v", err)
	}
	if report.User.Username != "alice" {
		t.Errorf("User.Username = %q, want alice", report.User.Username)
	}
	if report.Stats.SolvedQuestions != 2 {
		t.Errorf("SolvedQuestions = %d, want 2", report.Stats.SolvedQuestions)
	}
	if report.Stats.TotalQuestions != 4 {
		t.Errorf("TotalQuestions = %d, want 4", report.Stats.TotalQuestions)
	}
	if report.Stats.TotalSubmissions != 8 {
		t.Errorf("TotalSubmissions = %d, want 8", report.Stats.TotalSubmissions)
	}
	if report.Stats.Accuracy != 25 {
		t.Errorf("Accuracy = %v, want 25", report.Stats.Accuracy)
	}
}

func TestGetUserProgressNoSubmissions(t *testing.T) {
	user := &model.User{ID: "u1", Username: "alice"}
	svc := NewProgressService(&fakeProgressRepo{}, &fakeSubmissionRepo{}, &fakeQuestionRepo{}, newFakeUserRepo(), nil, 0)

	report, err := svc.GetUserProgress(context.Background(), user)
	if err != nil {
		t.Fatalf("GetUserProgress: %v", err)
	}
	if report.Stats.Accuracy != 0 {
		t.Errorf("Accuracy with no submissions = %v, want 0", report.Stats.Accuracy)
	}
}

func TestGetLeaderboardRanksAndLimit(t *testing.T) {
	userRepo := newFakeUserRepo()
	for i := 0; i < 12; i++ {
		userRepo.users[string(rune('a'+i))] = &model.User{
			ID:       string(rune('a' + i)),
			Username: "user" + string(rune('a'+i)),
			Points:   (i + 1) * 10,
		}
	}
	svc := NewProgressService(&fakeProgressRepo{}, &fakeSubmissionRepo{}, &fakeQuestionRepo{}, userRepo, nil, 0)

	entries, err := svc.GetLeaderboard(context.Background())
	if err != nil {
		t.Fatalf("GetLeaderboard: %v", err)
	}
	if len(entries) != 10 {
		t.Fatalf("got %d entries, want at most 10", len(entries))
	}
	for i, e := range entries {
		if e.Rank != i+1 {
			t.Errorf("entry %d rank = %d, want %d", i, e.Rank, i+1)
		}
		if i > 0 && entries[i-1].Points < e.Points {
			t.Errorf("entries not ordered by points descending at %d", i)
		}
	}
	if entries[0].Points != 120 {
		t.Errorf("top entry points = %d, want 120", entries[0].Points)
	}
}

func TestRankUsers(t *testing.T) {
	entries := rankUsers([]model.User{
		{Username: "a", Points: 50, StreakDays: 3},
		{Username: "b", Points: 20},
	})
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Rank != 1 || entries[1].Rank != 2 {
		t.Errorf("ranks = %d,%d, want 1,2", entries[0].Rank, entries[1].Rank)
	}
	if entries[0].StreakDays != 3 {
		t.Errorf("StreakDays = %d, want 3", entries[0].StreakDays)
	}

	if got := rankUsers(nil); len(got) != 0 {
		t.Errorf("rankUsers(nil) = %v, want empty", got)
	}
}
