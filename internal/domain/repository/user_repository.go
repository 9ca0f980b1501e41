package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"code_arena/internal/common"
	"code_arena/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	// FindByIDForUpdate locks the user row inside tx so concurrent
	// submissions cannot lose points/streak updates.
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id string) (*model.User, error)
	ApplySolve(ctx context.Context, tx *sql.Tx, userID string, points, streakDays int, lastSolveDate time.Time) error
	TopByPoints(ctx context.Context, limit int) ([]model.User, error)
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

const userColumns = `id, email, username, password_hash, full_name, points, streak_days, last_solve_date, provider, created_at`

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, email, username, password_hash, full_name, provider)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.Username, user.PasswordHash, user.FullName, user.Provider)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return fmt.Errorf("user with given email or username already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return nil
}

func scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.FullName,
		&user.Points, &user.StreakDays, &user.LastSolveDate, &user.Provider, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *pgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("pgUserRepository.FindByEmail: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("pgUserRepository.FindByID: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	user, err := scanUser(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("pgUserRepository.FindByIDForUpdate: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) ApplySolve(ctx context.Context, tx *sql.Tx, userID string, points, streakDays int, lastSolveDate time.Time) error {
	query := `UPDATE users SET points = points + $1, streak_days = $2, last_solve_date = $3 WHERE id = $4`
	_, err := tx.ExecContext(ctx, query, points, streakDays, lastSolveDate, userID)
	if err != nil {
		return fmt.Errorf("pgUserRepository.ApplySolve: %w", err)
	}
	return nil
}

func (r *pgUserRepository) TopByPoints(ctx context.Context, limit int) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY points DESC, created_at ASC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.TopByPoints query: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.FullName,
			&u.Points, &u.StreakDays, &u.LastSolveDate, &u.Provider, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgUserRepository.TopByPoints scan: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgUserRepository.TopByPoints rows.Err: %w", err)
	}
	return users, nil
}
