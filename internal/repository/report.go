package repository

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReportRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReportRepo(db *dbpg.DB) *ReportRepository {
	return &ReportRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ReportRepository) Overview(ctx context.Context, topN int) (*domain.Overview, error) {
	var (
		o   domain.Overview
		err error
	)

	if o.EventsByStatus, o.TotalEvents, err = r.countByStatus(ctx, "events"); err != nil {
		return nil, err
	}
	if o.RegistrationsByStatus, o.TotalRegistrations, err = r.countByStatus(ctx, "event_registrations"); err != nil {
		return nil, err
	}
	if o.SubmissionsByStatus, o.TotalSubmissions, err = r.countByStatus(ctx, "registration_submissions"); err != nil {
		return nil, err
	}
	if o.PopularEvents, err = r.popular(ctx, topN); err != nil {
		return nil, err
	}
	if o.RecentEvents, err = r.recent(ctx, topN); err != nil {
		return nil, err
	}

	return &o, nil
}

// countByStatus groups a table by its status column. table is always one of
// the fixed names above, never user input.
func (r *ReportRepository) countByStatus(ctx context.Context, table string) ([]domain.StatusCount, int, error) {
	query := fmt.Sprintf(`SELECT status, COUNT(*) FROM %s GROUP BY status ORDER BY status`, table)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count %s by status: %w", table, err)
	}
	defer rows.Close()

	res := make([]domain.StatusCount, 0)
	total := 0
	for rows.Next() {
		var c domain.StatusCount
		if err = rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, 0, fmt.Errorf("scan %s status count: %w", table, err)
		}
		total += c.Count
		res = append(res, c)
	}

	return res, total, rows.Err()
}

func (r *ReportRepository) popular(ctx context.Context, topN int) ([]domain.PopularEvent, error) {
	query := `
		SELECT id, title, slug, registrations, submissions
		FROM (
			SELECT e.id, e.title, e.slug, e.created_at,
				(SELECT COUNT(*) FROM event_registrations r WHERE r.event_id = e.id) AS registrations,
				(SELECT COUNT(*) FROM registration_submissions s
				  WHERE s.event_id = e.id AND s.status <> 'REJECTED') AS submissions
			FROM events e
		) t
		WHERE registrations + submissions > 0
		ORDER BY registrations + submissions DESC, created_at DESC
		LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, topN)
	if err != nil {
		return nil, fmt.Errorf("popular events: %w", err)
	}
	defer rows.Close()

	res := make([]domain.PopularEvent, 0)
	for rows.Next() {
		var p domain.PopularEvent
		if err = rows.Scan(&p.EventID, &p.Title, &p.Slug, &p.Registrations, &p.Submissions); err != nil {
			return nil, fmt.Errorf("scan popular event: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func (r *ReportRepository) recent(ctx context.Context, topN int) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e ORDER BY e.created_at DESC LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, topN)
	if err != nil {
		return nil, fmt.Errorf("recent events: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recent event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}
