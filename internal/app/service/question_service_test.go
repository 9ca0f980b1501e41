package service

import (
	"context"
	"errors"
	"testing"

	"code_arena/internal/common"
	"code_arena/internal/domain/model"
)

type fakeQuestionRepo struct {
	questions []model.Question
}

func (r *fakeQuestionRepo) Create(ctx context.Context, q *model.Question) error {
	r.questions = append(r.questions, *q)
	return nil
}

func (r *fakeQuestionRepo) FindByID(ctx context.Context, id string) (*model.Question, error) {
	for i := range r.questions {
		if r.questions[i].ID == id {
			q := r.questions[i]
			return &q, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeQuestionRepo) List(ctx context.Context, filter model.QuestionFilter) ([]model.Question, error) {
	out := []model.Question{}
	for _, q := range r.questions {
		if filter.Language != "" && q.Language != filter.Language {
			continue
		}
		if filter.Difficulty != "" && string(q.Difficulty) != filter.Difficulty {
			continue
		}
		if filter.Topic != "" && q.Topic != filter.Topic {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (r *fakeQuestionRepo) Count(ctx context.Context) (int, error) {
	return len(r.questions), nil
}

func TestCreateQuestionValidation(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionRepo{})

	_, err := svc.CreateQuestion(context.Background(), CreateQuestionRequest{Title: "No language"})
	if !errors.Is(err, common.ErrBadRequest) {
		t.Errorf("err = %v, want ErrBadRequest", err)
	}
}

func TestCreateQuestionDefaultsAndSlug(t *testing.T) {
	repo := &fakeQuestionRepo{}
	svc := NewQuestionService(repo)

	resp, err := svc.CreateQuestion(context.Background(), CreateQuestionRequest{
		Title:      "Two Sum Redux",
		Difficulty: "Easy",
		Language:   "JavaScript",
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected an id")
	}

	created := repo.questions[0]
	if created.Slug != "two-sum-redux" {
		t.Errorf("Slug = %q, want two-sum-redux", created.Slug)
	}
	if created.Points != 10 {
		t.Errorf("Points = %d, want default 10", created.Points)
	}
	if created.TestCases != "[]" {
		t.Errorf("TestCases = %q, want empty list", created.TestCases)
	}
}

func TestGetQuestionDetailParsesTestCasesAndOmitsSolution(t *testing.T) {
	repo := &fakeQuestionRepo{questions: []model.Question{{
		ID:          "q1",
		Title:       "Two Sum",
		Language:    "JavaScript",
		StarterCode: "function twoSum() {}",
		Solution:    "the secret answer",
		TestCases:   `[{"input": "[2,7], 9", "expected": "[0,1]"}]`,
	}}}
	svc := NewQuestionService(repo)

	detail, err := svc.GetQuestion(context.Background(), "q1")
	if err != nil {
		t.Fatalf("GetQuestion: %v", err)
	}
	if len(detail.TestCases) != 1 || detail.TestCases[0].Expected != "[0,1]" {
		t.Errorf("TestCases = %+v, want the parsed pair", detail.TestCases)
	}
	if detail.StarterCode == "" {
		t.Error("detail must include starter code")
	}

	if _, err := svc.GetQuestion(context.Background(), "missing"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("unknown id err = %v, want ErrNotFound", err)
	}
}

func TestListQuestionsFiltersConjunctively(t *testing.T) {
	repo := &fakeQuestionRepo{questions: []model.Question{
		{ID: "1", Language: "JavaScript", Difficulty: model.DifficultyEasy, Topic: "Arrays"},
		{ID: "2", Language: "JavaScript", Difficulty: model.DifficultyMedium, Topic: "Stack"},
		{ID: "3", Language: "SQL", Difficulty: model.DifficultyEasy, Topic: "Joins"},
	}}
	svc := NewQuestionService(repo)

	tests := []struct {
		name    string
		filter  model.QuestionFilter
		wantIDs []string
	}{
		{name: "no filters", filter: model.QuestionFilter{}, wantIDs: []string{"1", "2", "3"}},
		{name: "language only", filter: model.QuestionFilter{Language: "JavaScript"}, wantIDs: []string{"1", "2"}},
		{name: "language and difficulty", filter: model.QuestionFilter{Language: "JavaScript", Difficulty: "Easy"}, wantIDs: []string{"1"}},
		{name: "no matches", filter: model.QuestionFilter{Language: "SQL", Topic: "Stack"}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListQuestions(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("ListQuestions: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d summaries, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("summary[%d].ID = %q, want %q", i, got[i].ID, want)
				}
			}
		})
	}
}

func TestSeedQuestionsIdempotent(t *testing.T) {
	repo := &fakeQuestionRepo{}

	if err := SeedQuestions(context.Background(), repo); err != nil {
		t.Fatalf("SeedQuestions: %v", err)
	}
	if len(repo.questions) != 3 {
		t.Fatalf("seeded %d questions, want 3", len(repo.questions))
	}
	if repo.questions[0].Title != "Two Sum" {
		t.Errorf("first seeded question = %q, want Two Sum", repo.questions[0].Title)
	}

	// A second run must not duplicate the catalog.
	if err := SeedQuestions(context.Background(), repo); err != nil {
		t.Fatalf("second SeedQuestions: %v", err)
	}
	if len(repo.questions) != 3 {
		t.Errorf("after reseed have %d questions, want 3", len(repo.questions))
	}
}
