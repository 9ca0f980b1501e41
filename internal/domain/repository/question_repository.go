package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"code_arena/internal/common"
	"code_arena/internal/domain/model"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id string) (*model.Question, error)
	List(ctx context.Context, filter model.QuestionFilter) ([]model.Question, error)
	Count(ctx context.Context) (int, error)
}

type pgQuestionRepository struct {
	db *sql.DB
}

func NewPgQuestionRepository(db *sql.DB) QuestionRepository {
	return &pgQuestionRepository{db: db}
}

const questionColumns = `id, title, slug, description, difficulty, language, topic, starter_code, solution, test_cases, points, created_at`

func (r *pgQuestionRepository) Create(ctx context.Context, q *model.Question) error {
	query := `INSERT INTO questions (id, title, slug, description, difficulty, language, topic, starter_code, solution, test_cases, points)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query,
		q.ID, q.Title, q.Slug, q.Description, q.Difficulty, q.Language, q.Topic,
		q.StarterCode, q.Solution, q.TestCases, q.Points,
	)
	if err != nil {
		return fmt.Errorf("pgQuestionRepository.Create: %w", err)
	}
	return nil
}

func (r *pgQuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`
	q := &model.Question{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&q.ID, &q.Title, &q.Slug, &q.Description, &q.Difficulty, &q.Language, &q.Topic,
		&q.StarterCode, &q.Solution, &q.TestCases, &q.Points, &q.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgQuestionRepository.FindByID: %w", err)
	}
	return q, nil
}

// List applies the optional filters conjunctively.
func (r *pgQuestionRepository) List(ctx context.Context, filter model.QuestionFilter) ([]model.Question, error) {
	var query strings.Builder
	query.WriteString(`SELECT ` + questionColumns + ` FROM questions`)

	var conditions []string
	var args []interface{}
	argID := 1

	if filter.Language != "" {
		conditions = append(conditions, fmt.Sprintf("language = $%d", argID))
		args = append(args, filter.Language)
		argID++
	}
	if filter.Difficulty != "" {
		conditions = append(conditions, fmt.Sprintf("difficulty = $%d", argID))
		args = append(args, filter.Difficulty)
		argID++
	}
	if filter.Topic != "" {
		conditions = append(conditions, fmt.Sprintf("topic = $%d", argID))
		args = append(args, filter.Topic)
		argID++
	}

	if len(conditions) > 0 {
		query.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	query.WriteString(" ORDER BY created_at ASC")

	rows, err := r.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("pgQuestionRepository.List query: %w", err)
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(
			&q.ID, &q.Title, &q.Slug, &q.Description, &q.Difficulty, &q.Language, &q.Topic,
			&q.StarterCode, &q.Solution, &q.TestCases, &q.Points, &q.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgQuestionRepository.List scan: %w", err)
		}
		questions = append(questions, q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgQuestionRepository.List rows.Err: %w", err)
	}
	return questions, nil
}

func (r *pgQuestionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("pgQuestionRepository.Count: %w", err)
	}
	return count, nil
}
