package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const userColumns = `id, username, email, role, telegram_chat_id, created_at`

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create is not retried: a duplicate username must come back as
// domain.ErrUsernameTaken on the first attempt.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.Master.ExecContext(
		ctx, query, u.ID, u.Username, u.Email, u.Role, u.TelegramChatID, u.CreatedAt,
	); err != nil {
		code, constraint := pgErrorCode(err)
		if code == uniqueViolation && constraint == "users_username_key" {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u, err := scanUser(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, domain.ErrUserNotFound
	case err != nil:
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	if len(ids) == 0 {
		return []*domain.User{}, nil
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1) ORDER BY username ASC`
	return r.collect(ctx, query, pq.Array(ids))
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	return r.collect(ctx, `SELECT `+userColumns+` FROM users ORDER BY username ASC`)
}

func (r *UserRepository) collect(ctx context.Context, query string, args ...any) ([]*domain.User, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, u)
	}

	return res, rows.Err()
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u      domain.User
		chatID sql.NullInt64
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &chatID, &u.CreatedAt); err != nil {
		return nil, err
	}
	if chatID.Valid {
		u.TelegramChatID = &chatID.Int64
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}
