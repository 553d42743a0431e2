package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const registrationColumns = `id, event_id, user_id, status, created_at, updated_at`

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем строку мероприятия: все проверки ниже видят согласованное состояние
	var (
		maxAttendees sql.NullInt64
		formOnly     bool
	)
	lockQuery := `SELECT max_attendees, requires_registration FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, reg.EventID).Scan(&maxAttendees, &formOnly); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}
	if formOnly {
		return domain.ErrFormRequired
	}

	var exists bool
	existsQuery := `SELECT EXISTS(SELECT 1 FROM event_registrations WHERE event_id = $1 AND user_id = $2)`
	if err = tx.QueryRowContext(ctx, existsQuery, reg.EventID, reg.UserID).Scan(&exists); err != nil {
		return fmt.Errorf("check registration: %w", err)
	}
	if exists {
		return domain.ErrAlreadyRegistered
	}

	if maxAttendees.Valid {
		held, err := heldSpots(ctx, tx, reg.EventID)
		if err != nil {
			return err
		}
		if int64(held) >= maxAttendees.Int64 {
			return domain.ErrEventFull
		}
	}

	query := `INSERT INTO event_registrations (id, event_id, user_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(
		ctx, query, reg.ID, reg.EventID,
		reg.UserID, reg.Status, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		if code, _ := pgErrorCode(err); code == uniqueViolation {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return tx.Commit()
}

func (r *RegistrationRepository) Delete(ctx context.Context, eventID, userID string) error {
	query := `DELETE FROM event_registrations WHERE event_id = $1 AND user_id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("registration rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRegistrationNotFound
	}

	return nil
}

func (r *RegistrationRepository) SetStatus(
	ctx context.Context,
	eventID, userID string,
	status domain.RegistrationStatus,
) (*domain.Registration, error) {
	query := `UPDATE event_registrations
			  SET status = $3, updated_at = now()
			  WHERE event_id = $1 AND user_id = $2
			  RETURNING ` + registrationColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID, status)
	if err != nil {
		return nil, fmt.Errorf("set registration status: %w", err)
	}

	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM event_registrations
			  WHERE event_id = $1
			  ORDER BY created_at ASC`
	return r.list(ctx, query, eventID)
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM event_registrations
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *RegistrationRepository) list(ctx context.Context, query string, arg string) ([]*domain.Registration, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Registration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, reg)
	}

	return res, rows.Err()
}

func scanRegistration(row rowScanner) (*domain.Registration, error) {
	var reg domain.Registration
	if err := row.Scan(
		&reg.ID, &reg.EventID, &reg.UserID,
		&reg.Status, &reg.CreatedAt, &reg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &reg, nil
}
