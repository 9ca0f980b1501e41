package repository

import (
	"context"
	"database/sql"
	"fmt"

	"code_arena/internal/domain/model"
)

type SubmissionRepository interface {
	Create(ctx context.Context, tx *sql.Tx, sub *model.Submission) error
	CountByUser(ctx context.Context, userID string) (int, error)
}

type pgSubmissionRepository struct {
	db *sql.DB
}

func NewPgSubmissionRepository(db *sql.DB) SubmissionRepository {
	return &pgSubmissionRepository{db: db}
}

func (r *pgSubmissionRepository) Create(ctx context.Context, tx *sql.Tx, sub *model.Submission) error {
	query := `INSERT INTO submissions (id, user_id, question_id, code, language, status, score, passed_test_cases, total_test_cases)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := tx.ExecContext(ctx, query,
		sub.ID, sub.UserID, sub.QuestionID, sub.Code, sub.Language,
		sub.Status, sub.Score, sub.PassedTestCases, sub.TotalTestCases,
	)
	if err != nil {
		return fmt.Errorf("pgSubmissionRepository.Create: %w", err)
	}
	return nil
}

func (r *pgSubmissionRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("pgSubmissionRepository.CountByUser: %w", err)
	}
	return count, nil
}
