package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"code_arena/internal/domain/model"
)

type ProgressRepository interface {
	// Upsert records one attempt for (user, question). Attempts increment by
	// one, best_score only ever grows and solved never reverts to false.
	Upsert(ctx context.Context, tx *sql.Tx, progress *model.UserProgress) error
	CountSolvedByUser(ctx context.Context, userID string) (int, error)
}

type pgProgressRepository struct {
	db *sql.DB
}

func NewPgProgressRepository(db *sql.DB) ProgressRepository {
	return &pgProgressRepository{db: db}
}

func (r *pgProgressRepository) Upsert(ctx context.Context, tx *sql.Tx, p *model.UserProgress) error {
	var solvedAt *time.Time
	if p.Solved {
		solvedAt = p.SolvedAt
	}
	query := `INSERT INTO user_progress (id, user_id, question_id, solved, best_score, attempts, solved_at)
	          VALUES ($1, $2, $3, $4, $5, 1, $6)
	          ON CONFLICT (user_id, question_id) DO UPDATE SET
	              attempts = user_progress.attempts + 1,
	              best_score = GREATEST(user_progress.best_score, EXCLUDED.best_score),
	              solved = user_progress.solved OR EXCLUDED.solved,
	              solved_at = COALESCE(user_progress.solved_at, EXCLUDED.solved_at)`
	_, err := tx.ExecContext(ctx, query, p.ID, p.UserID, p.QuestionID, p.Solved, p.BestScore, solvedAt)
	if err != nil {
		return fmt.Errorf("pgProgressRepository.Upsert: %w", err)
	}
	return nil
}

func (r *pgProgressRepository) CountSolvedByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_progress WHERE user_id = $1 AND solved = TRUE`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("pgProgressRepository.CountSolvedByUser: %w", err)
	}
	return count, nil
}
