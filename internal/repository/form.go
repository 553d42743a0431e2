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

const formColumns = `f.id, f.event_id, f.requires_approval, f.created_at, f.updated_at,
		e.id, e.title, e.slug, e.start_date, e.end_date, e.registration_deadline, e.max_attendees, e.status`

type FormRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFormRepo(db *dbpg.DB) *FormRepository {
	return &FormRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Upsert creates the event's form or replaces the existing one. The form row
// keeps its id across replacements; fields are deleted and re-inserted in the
// same transaction, so a form is never left without fields.
func (r *FormRepository) Upsert(ctx context.Context, f *domain.RegistrationForm) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	upsertQuery := `INSERT INTO registration_forms (id, event_id, requires_approval, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5)
					ON CONFLICT (event_id) DO UPDATE
					SET requires_approval = EXCLUDED.requires_approval,
						updated_at = EXCLUDED.updated_at
					RETURNING id, created_at`
	if err = tx.QueryRowContext(
		ctx, upsertQuery, f.ID, f.EventID, f.RequiresApproval, f.CreatedAt, f.UpdatedAt,
	).Scan(&f.ID, &f.CreatedAt); err != nil {
		if code, _ := pgErrorCode(err); code == foreignKeyViolation {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("upsert form: %w", err)
	}

	// Полная замена полей: старые удаляем, новые вставляем
	if _, err = tx.ExecContext(ctx, `DELETE FROM registration_fields WHERE form_id = $1`, f.ID); err != nil {
		return fmt.Errorf("delete fields: %w", err)
	}

	fieldQuery := `INSERT INTO registration_fields
				   (id, form_id, label, field_type, placeholder, required, options, sort_order, validation)
				   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for i := range f.Fields {
		field := &f.Fields[i]
		field.FormID = f.ID
		if _, err = tx.ExecContext(
			ctx, fieldQuery,
			field.ID, field.FormID, field.Label, field.FieldType, field.Placeholder,
			field.Required, pq.Array(field.Options), field.Order, nullableJSON(field.Validation),
		); err != nil {
			return fmt.Errorf("insert field %q: %w", field.Label, err)
		}
	}

	if _, err = tx.ExecContext(
		ctx, `UPDATE events SET requires_registration = TRUE, updated_at = $2 WHERE id = $1`,
		f.EventID, f.UpdatedAt,
	); err != nil {
		return fmt.Errorf("flag event: %w", err)
	}

	return tx.Commit()
}

func (r *FormRepository) GetByEvent(ctx context.Context, eventID string) (*domain.RegistrationForm, error) {
	return r.get(ctx, `f.event_id = $1`, eventID)
}

func (r *FormRepository) GetByID(ctx context.Context, id string) (*domain.RegistrationForm, error) {
	return r.get(ctx, `f.id = $1`, id)
}

func (r *FormRepository) get(ctx context.Context, cond string, arg string) (*domain.RegistrationForm, error) {
	query := `SELECT ` + formColumns + `
			  FROM registration_forms f
			  JOIN events e ON e.id = f.event_id
			  WHERE ` + cond

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get form: %w", err)
	}

	var (
		form     domain.RegistrationForm
		ev       domain.EventSummary
		deadline sql.NullTime
		maxAtt   sql.NullInt64
	)
	if err = row.Scan(
		&form.ID, &form.EventID, &form.RequiresApproval, &form.CreatedAt, &form.UpdatedAt,
		&ev.ID, &ev.Title, &ev.Slug, &ev.StartDate, &ev.EndDate, &deadline, &maxAtt, &ev.Status,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFormNotFound
		}
		return nil, fmt.Errorf("scan form: %w", err)
	}
	if deadline.Valid {
		t := deadline.Time.UTC()
		ev.RegistrationDeadline = &t
	}
	if maxAtt.Valid {
		m := int(maxAtt.Int64)
		ev.MaxAttendees = &m
	}
	ev.StartDate = ev.StartDate.UTC()
	ev.EndDate = ev.EndDate.UTC()
	form.Event = &ev

	fields, err := r.fields(ctx, form.ID)
	if err != nil {
		return nil, err
	}
	form.Fields = fields

	return &form, nil
}

func (r *FormRepository) fields(ctx context.Context, formID string) ([]domain.RegistrationField, error) {
	query := `SELECT id, form_id, label, field_type, placeholder, required, options, sort_order, validation
			  FROM registration_fields
			  WHERE form_id = $1
			  ORDER BY sort_order ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, formID)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	defer rows.Close()

	res := make([]domain.RegistrationField, 0)
	for rows.Next() {
		var (
			f          domain.RegistrationField
			validation []byte
		)
		if err = rows.Scan(
			&f.ID, &f.FormID, &f.Label, &f.FieldType, &f.Placeholder,
			&f.Required, pq.Array(&f.Options), &f.Order, &validation,
		); err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		if len(validation) > 0 {
			f.Validation = validation
		}
		res = append(res, f)
	}

	return res, rows.Err()
}
