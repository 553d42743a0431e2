package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `e.id, e.title, e.slug, e.description, e.location, e.event_type, e.category_id,
		e.start_date, e.end_date, e.registration_deadline, e.max_attendees, e.status,
		e.requires_registration, e.created_by, e.created_at, e.updated_at,
		(SELECT COUNT(*) FROM event_registrations r WHERE r.event_id = e.id) AS registration_count`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create inserts e without retries so that a slug collision surfaces
// immediately as domain.ErrSlugTaken.
func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, slug, description, location, event_type, category_id,
				start_date, end_date, registration_deadline, max_attendees, status,
				requires_registration, created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.Master.ExecContext(
		ctx, query,
		e.ID, e.Title, e.Slug, e.Description, e.Location, e.EventType, e.CategoryID,
		e.StartDate, e.EndDate, e.RegistrationDeadline, e.MaxAttendees, e.Status,
		e.RequiresRegistration, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if code, constraint := pgErrorCode(err); code == uniqueViolation && constraint == "events_slug_key" {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

// Update writes every mutable column. A row already CANCELLED keeps its
// status even if a concurrent edit computed another one.
func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, description = $3, location = $4, event_type = $5, category_id = $6,
				  start_date = $7, end_date = $8, registration_deadline = $9, max_attendees = $10,
				  status = CASE WHEN status = 'CANCELLED' THEN status ELSE $11 END,
				  updated_at = $12
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Location, e.EventType, e.CategoryID,
		e.StartDate, e.EndDate, e.RegistrationDeadline, e.MaxAttendees,
		e.Status, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE e.id = $1`
	return r.getOne(ctx, query, id)
}

func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE e.slug = $1`
	return r.getOne(ctx, query, slug)
}

func (r *EventRepository) getOne(ctx context.Context, query string, arg any) (*domain.Event, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, int, error) {
	where, args := eventFilterClause(f)

	var total int
	countQuery := `SELECT COUNT(*) FROM events e` + where
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan events count: %w", err)
	}

	args = append(args, f.Limit, f.Offset())
	query := fmt.Sprintf(`SELECT %s FROM events e%s
			  ORDER BY e.start_date ASC, e.created_at ASC
			  LIMIT $%d OFFSET $%d`, eventColumns, where, len(args)-1, len(args))

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, total, rows.Err()
}

func eventFilterClause(f domain.EventFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Status != "" {
		add("e.status = $%d", f.Status)
	}
	if f.EventType != "" {
		add("e.event_type = $%d", f.EventType)
	}
	if f.CategoryID != "" {
		add("e.category_id = $%d", f.CategoryID)
	}
	if f.Search != "" {
		args = append(args, "%"+escapeLike(f.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(e.title ILIKE $%d OR e.description ILIKE $%d OR e.location ILIKE $%d)", n, n, n))
	}
	if f.From != nil {
		add("e.start_date >= $%d", *f.From)
	}
	if f.To != nil {
		add("e.end_date <= $%d", *f.To)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *EventRepository) RefreshStatuses(ctx context.Context, now time.Time) ([]domain.StatusChange, error) {
	query := `
		UPDATE events e
		SET status = s.new_status, updated_at = $1
		FROM (
			SELECT id, status AS old_status,
				CASE
					WHEN $1 < start_date THEN 'UPCOMING'
					WHEN $1 > end_date THEN 'COMPLETED'
					ELSE 'ONGOING'
				END AS new_status
			FROM events
			WHERE status <> 'CANCELLED'
		) s
		WHERE e.id = s.id
		  AND e.status <> 'CANCELLED'
		  AND s.old_status <> s.new_status
		RETURNING e.id, s.old_status, s.new_status`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, now)
	if err != nil {
		return nil, fmt.Errorf("refresh statuses: %w", err)
	}
	defer rows.Close()

	var res []domain.StatusChange
	for rows.Next() {
		var c domain.StatusChange
		if err = rows.Scan(&c.EventID, &c.From, &c.To); err != nil {
			return nil, fmt.Errorf("scan status change: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		e        domain.Event
		category sql.NullString
		deadline sql.NullTime
		maxAtt   sql.NullInt64
	)
	if err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.Location, &e.EventType, &category,
		&e.StartDate, &e.EndDate, &deadline, &maxAtt, &e.Status,
		&e.RequiresRegistration, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		&e.RegistrationCount,
	); err != nil {
		return nil, err
	}

	if category.Valid {
		e.CategoryID = &category.String
	}
	if deadline.Valid {
		t := deadline.Time.UTC()
		e.RegistrationDeadline = &t
	}
	if maxAtt.Valid {
		m := int(maxAtt.Int64)
		e.MaxAttendees = &m
	}
	e.StartDate = e.StartDate.UTC()
	e.EndDate = e.EndDate.UTC()

	return &e, nil
}
