package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const submissionColumns = `id, form_id, event_id, user_id, responses, status,
		approved_by, approved_at, rejection_reason,
		attended, attendance_marked_by, attendance_marked_at,
		created_at, updated_at`

// Submissions in these statuses hold a spot of the event.
var spotHoldingStatuses = []domain.SubmissionStatus{
	domain.SubmissionStatusPending,
	domain.SubmissionStatusApproved,
}

// heldSpots counts the places taken on an event by both registration paths:
// active simple registrations plus PENDING and APPROVED submissions. The
// caller must hold the event row lock.
func heldSpots(ctx context.Context, tx *sql.Tx, eventID string) (int, error) {
	query := `SELECT
				(SELECT COUNT(*) FROM event_registrations
				 WHERE event_id = $1 AND status <> $2)
			  + (SELECT COUNT(*) FROM registration_submissions
				 WHERE event_id = $1 AND status = ANY($3))`

	var held int
	if err := tx.QueryRowContext(
		ctx, query, eventID, domain.RegistrationStatusCancelled, pq.Array(spotHoldingStatuses),
	).Scan(&held); err != nil {
		return 0, fmt.Errorf("count held spots: %w", err)
	}
	return held, nil
}

type SubmissionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSubmissionRepo(db *dbpg.DB) *SubmissionRepository {
	return &SubmissionRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *domain.Submission, capacity int) error {
	responses, err := json.Marshal(s.Responses)
	if err != nil {
		return fmt.Errorf("marshal responses: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var locked string
	lockQuery := `SELECT id FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, s.EventID).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	var exists bool
	existsQuery := `SELECT EXISTS(SELECT 1 FROM registration_submissions WHERE form_id = $1 AND user_id = $2)`
	if err = tx.QueryRowContext(ctx, existsQuery, s.FormID, s.UserID).Scan(&exists); err != nil {
		return fmt.Errorf("check submission: %w", err)
	}
	if exists {
		return domain.ErrAlreadySubmitted
	}

	if capacity > 0 {
		held, err := heldSpots(ctx, tx, s.EventID)
		if err != nil {
			return err
		}
		if held >= capacity {
			return domain.ErrEventFull
		}
	}

	query := `INSERT INTO registration_submissions
			  (id, form_id, event_id, user_id, responses, status, approved_by, approved_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, query,
		s.ID, s.FormID, s.EventID, s.UserID, responses, s.Status,
		s.ApprovedBy, s.ApprovedAt, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		code, constraint := pgErrorCode(err)
		switch {
		case code == uniqueViolation:
			return domain.ErrAlreadySubmitted
		case code == foreignKeyViolation && constraint == "registration_submissions_form_event_fkey":
			return domain.ErrFormNotFound
		}
		return fmt.Errorf("insert submission: %w", err)
	}

	return tx.Commit()
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM registration_submissions WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}

	s, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("scan submission: %w", err)
	}

	return s, nil
}

// UpdateStatus applies an admin decision. Attendance marks only survive on
// APPROVED submissions. Approving a submission that does not hold a spot
// (REJECTED or WAITLISTED) re-checks the event capacity under the event lock.
func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id string, upd domain.StatusUpdate) (*domain.Submission, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var eventID string
	eventQuery := `SELECT event_id FROM registration_submissions WHERE id = $1`
	if err = tx.QueryRowContext(ctx, eventQuery, id).Scan(&eventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("get submission event: %w", err)
	}

	// порядок блокировок как в Create: сначала событие, потом заявка
	var maxAttendees sql.NullInt64
	lockQuery := `SELECT max_attendees FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, eventID).Scan(&maxAttendees); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	var current domain.SubmissionStatus
	statusQuery := `SELECT status FROM registration_submissions WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, statusQuery, id).Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("lock submission: %w", err)
	}

	if upd.Status == domain.SubmissionStatusApproved && !holdsSpot(current) &&
		maxAttendees.Valid && maxAttendees.Int64 > 0 {
		held, err := heldSpots(ctx, tx, eventID)
		if err != nil {
			return nil, err
		}
		if held >= int(maxAttendees.Int64) {
			return nil, domain.ErrEventFull
		}
	}

	query := `UPDATE registration_submissions
			  SET status = $2::text,
				  approved_by = $3,
				  approved_at = $4,
				  rejection_reason = $5,
				  attended = CASE WHEN $2::text = 'APPROVED' THEN attended END,
				  attendance_marked_by = CASE WHEN $2::text = 'APPROVED' THEN attendance_marked_by END,
				  attendance_marked_at = CASE WHEN $2::text = 'APPROVED' THEN attendance_marked_at END,
				  updated_at = now()
			  WHERE id = $1
			  RETURNING ` + submissionColumns

	row := tx.QueryRowContext(
		ctx, query,
		id, upd.Status, upd.ApprovedBy, upd.ApprovedAt, upd.RejectionReason,
	)

	s, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("scan submission: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit status update: %w", err)
	}

	return s, nil
}

func holdsSpot(status domain.SubmissionStatus) bool {
	return slices.Contains(spotHoldingStatuses, status)
}

func (r *SubmissionRepository) BulkApprove(ctx context.Context, ids []string, approverID string, at time.Time) (int, error) {
	query := `UPDATE registration_submissions
			  SET status = $3, approved_by = $4, approved_at = $5,
				  rejection_reason = NULL, updated_at = $5
			  WHERE id = ANY($1) AND status = $2`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		pq.Array(ids), domain.SubmissionStatusPending, domain.SubmissionStatusApproved,
		approverID, at,
	)
	if err != nil {
		return 0, fmt.Errorf("bulk approve: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("submission rows affected: %w", err)
	}

	return int(rows), nil
}

func (r *SubmissionRepository) MarkAttendance(
	ctx context.Context,
	id string,
	attended bool,
	markerID string,
	at time.Time,
) (*domain.Submission, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Атомарно проверяем статус и отмечаем посещение
	query := `UPDATE registration_submissions
			  SET attended = $2, attendance_marked_by = $3, attendance_marked_at = $4, updated_at = $4
			  WHERE id = $1 AND status = $5
			  RETURNING ` + submissionColumns
	s, err := scanSubmission(tx.QueryRowContext(
		ctx, query, id, attended, markerID, at, domain.SubmissionStatusApproved,
	))
	if err == nil {
		return s, tx.Commit()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("mark attendance: %w", err)
	}

	// Определяем причину: заявки нет или она не одобрена
	var status string
	if err = tx.QueryRowContext(
		ctx, `SELECT status FROM registration_submissions WHERE id = $1`, id,
	).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("check submission: %w", err)
	}

	return nil, fmt.Errorf("%w: current status is %s", domain.ErrSubmissionNotApproved, status)
}

func (r *SubmissionRepository) ListByEvent(
	ctx context.Context,
	eventID string,
	status domain.SubmissionStatus,
) ([]*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + `
			  FROM registration_submissions
			  WHERE event_id = $1 AND ($2::text = '' OR status = $2::text)
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, string(status))
	if err != nil {
		return nil, fmt.Errorf("list submissions by event: %w", err)
	}
	defer rows.Close()

	return collectSubmissions(rows)
}

func (r *SubmissionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + `
			  FROM registration_submissions
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list submissions by user: %w", err)
	}
	defer rows.Close()

	return collectSubmissions(rows)
}

func (r *SubmissionRepository) AttendanceStats(ctx context.Context, eventID string) (*domain.AttendanceStats, error) {
	query := `SELECT
				COUNT(*),
				COUNT(*) FILTER (WHERE status = 'APPROVED'),
				COUNT(*) FILTER (WHERE status = 'APPROVED' AND attended IS TRUE),
				COUNT(*) FILTER (WHERE status = 'APPROVED' AND attended IS FALSE)
			  FROM registration_submissions
			  WHERE event_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("attendance stats: %w", err)
	}

	stats := domain.AttendanceStats{EventID: eventID}
	if err = row.Scan(&stats.TotalSubmissions, &stats.Approved, &stats.Attended, &stats.Absent); err != nil {
		return nil, fmt.Errorf("scan attendance stats: %w", err)
	}

	return &stats, nil
}

func collectSubmissions(rows *sql.Rows) ([]*domain.Submission, error) {
	res := make([]*domain.Submission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

func scanSubmission(row rowScanner) (*domain.Submission, error) {
	var (
		s            domain.Submission
		responses    []byte
		approvedBy   sql.NullString
		approvedAt   sql.NullTime
		reason       sql.NullString
		attended     sql.NullBool
		attendanceBy sql.NullString
		attendanceAt sql.NullTime
	)
	if err := row.Scan(
		&s.ID, &s.FormID, &s.EventID, &s.UserID, &responses, &s.Status,
		&approvedBy, &approvedAt, &reason,
		&attended, &attendanceBy, &attendanceAt,
		&s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	s.Responses = make(domain.Responses)
	if len(responses) > 0 {
		if err := json.Unmarshal(responses, &s.Responses); err != nil {
			return nil, fmt.Errorf("unmarshal responses: %w", err)
		}
	}
	if approvedBy.Valid {
		s.ApprovedBy = &approvedBy.String
	}
	if approvedAt.Valid {
		t := approvedAt.Time.UTC()
		s.ApprovedAt = &t
	}
	if reason.Valid {
		s.RejectionReason = &reason.String
	}
	if attended.Valid {
		s.Attended = &attended.Bool
	}
	if attendanceBy.Valid {
		s.AttendanceBy = &attendanceBy.String
	}
	if attendanceAt.Valid {
		t := attendanceAt.Time.UTC()
		s.AttendanceAt = &t
	}

	return &s, nil
}
