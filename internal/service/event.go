package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	maxSlugAttempts = 10
	defaultPage     = 1
	defaultLimit    = 10
	maxLimit        = 100
)

type EventService struct {
	repo     ports.EventRepo
	regRepo  ports.RegistrationRepo
	userRepo ports.UserRepo
	notifier ports.Notifier
	cache    ports.ReportCache
	logger   logger.Logger
	now      func() time.Time
}

func NewEventService(
	repo ports.EventRepo,
	regRepo ports.RegistrationRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	cache ports.ReportCache,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:     repo,
		regRepo:  regRepo,
		userRepo: userRepo,
		notifier: notifier,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, id domain.Identity, input domain.CreateEventInput) (*domain.Event, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Location = strings.TrimSpace(input.Location)

	switch {
	case input.Title == "":
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	case input.Description == "":
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	case input.Location == "":
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	case !input.EventType.Valid():
		return nil, fmt.Errorf("%w: unknown event_type %q", domain.ErrValidation, input.EventType)
	case input.StartDate.IsZero() || input.EndDate.IsZero():
		return nil, fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}

	now := s.now().UTC()
	event := &domain.Event{
		ID:                   uuid.New().String(),
		Title:                input.Title,
		Description:          input.Description,
		Location:             input.Location,
		EventType:            input.EventType,
		CategoryID:           input.CategoryID,
		StartDate:            input.StartDate.UTC(),
		EndDate:              input.EndDate.UTC(),
		RegistrationDeadline: utcPtr(input.RegistrationDeadline),
		MaxAttendees:         input.MaxAttendees,
		CreatedBy:            id.UserID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := validateSchedule(event); err != nil {
		return nil, err
	}
	event.Status = domain.DeriveStatus(now, event.StartDate, event.EndDate, "")

	if err := s.insertWithUniqueSlug(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("slug", event.Slug),
		logger.String("status", string(event.Status)),
	)
	invalidateReports(ctx, s.cache, s.logger)

	return event, nil
}

// insertWithUniqueSlug relies on the unique index on events.slug: on a
// collision the next candidate is tried, so concurrent creation of events
// with the same title cannot produce duplicates.
func (s *EventService) insertWithUniqueSlug(ctx context.Context, event *domain.Event) error {
	base := Slugify(event.Title)
	if base == "" {
		base = "event"
	}

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		event.Slug = base
		if attempt > 1 {
			event.Slug = fmt.Sprintf("%s-%d", base, attempt)
		}

		err := s.repo.Create(ctx, event)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrSlugTaken) {
			return err
		}
	}

	event.Slug = fmt.Sprintf("%s-%d", base, s.now().UnixNano())
	return s.repo.Create(ctx, event)
}

func (s *EventService) UpdateEvent(ctx context.Context, id domain.Identity, eventID string, patch domain.UpdateEventInput) (*domain.Event, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if err = applyPatch(event, patch); err != nil {
		return nil, err
	}
	if err = validateSchedule(event); err != nil {
		return nil, err
	}
	if event.MaxAttendees != nil && *event.MaxAttendees < event.RegistrationCount {
		return nil, fmt.Errorf("%w: max_attendees is below the %d existing registrations",
			domain.ErrValidation, event.RegistrationCount)
	}

	now := s.now().UTC()
	event.Status = domain.DeriveStatus(now, event.StartDate, event.EndDate, event.Status)
	event.UpdatedAt = now

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.logger.Info("event updated",
		logger.String("event_id", event.ID),
		logger.String("status", string(event.Status)),
	)
	invalidateReports(ctx, s.cache, s.logger)

	return event, nil
}

// CancelEvent soft-deletes an event by moving it to CANCELLED. Registrations
// and submissions are kept; registered users are notified.
func (s *EventService) CancelEvent(ctx context.Context, id domain.Identity, eventID string) (*domain.Event, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.Status == domain.EventStatusCancelled {
		return event, nil
	}

	event.Status = domain.EventStatusCancelled
	event.UpdatedAt = s.now().UTC()
	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("cancel event: %w", err)
	}

	s.logger.Info("event cancelled", logger.String("event_id", event.ID))
	invalidateReports(ctx, s.cache, s.logger)

	go s.notifyCancelled(context.WithoutCancel(ctx), event)

	return event, nil
}

func (s *EventService) notifyCancelled(ctx context.Context, event *domain.Event) {
	regs, err := s.regRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		s.logger.Error("failed to list registrations for cancel notification",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	if len(regs) == 0 {
		return
	}

	ids := make([]string, 0, len(regs))
	for _, r := range regs {
		ids = append(ids, r.UserID)
	}
	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("failed to get users for cancel notification",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	summary := event.Summary()
	for _, u := range users {
		s.notifier.NotifyEventCancelled(ctx, u, summary)
	}
}

func (s *EventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	s.currentStatus(event)
	return event, nil
}

func (s *EventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	event, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	s.currentStatus(event)
	return event, nil
}

// currentStatus replaces a stored status the scheduler has not caught up with
// yet. Filtering by status still uses the stored value.
func (s *EventService) currentStatus(event *domain.Event) {
	event.Status = domain.DeriveStatus(s.now().UTC(), event.StartDate, event.EndDate, event.Status)
}

func (s *EventService) ListEvents(ctx context.Context, filter domain.EventFilter) (*domain.EventPage, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, filter.Status)
	}
	if filter.EventType != "" && !filter.EventType.Valid() {
		return nil, fmt.Errorf("%w: unknown event_type %q", domain.ErrValidation, filter.EventType)
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, fmt.Errorf("%w: date range end precedes its start", domain.ErrValidation)
	}
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}
	filter.Search = strings.TrimSpace(filter.Search)

	events, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	for _, event := range events {
		s.currentStatus(event)
	}

	return &domain.EventPage{
		Events:     events,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: (total + filter.Limit - 1) / filter.Limit,
	}, nil
}

// RefreshStatuses moves stored statuses forward as time passes. Cancelled
// events are never touched.
func (s *EventService) RefreshStatuses(ctx context.Context) (int, error) {
	changes, err := s.repo.RefreshStatuses(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("refresh statuses: %w", err)
	}

	for _, c := range changes {
		s.logger.Debug("event status changed",
			logger.String("event_id", c.EventID),
			logger.String("from", string(c.From)),
			logger.String("to", string(c.To)),
		)
	}
	if len(changes) > 0 {
		invalidateReports(ctx, s.cache, s.logger)
	}

	return len(changes), nil
}

func applyPatch(e *domain.Event, p domain.UpdateEventInput) error {
	switch {
	case p.ClearCategory && p.CategoryID != nil:
		return fmt.Errorf("%w: category_id is both set and cleared", domain.ErrValidation)
	case p.ClearRegistrationDeadline && p.RegistrationDeadline != nil:
		return fmt.Errorf("%w: registration_deadline is both set and cleared", domain.ErrValidation)
	case p.ClearMaxAttendees && p.MaxAttendees != nil:
		return fmt.Errorf("%w: max_attendees is both set and cleared", domain.ErrValidation)
	}

	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return fmt.Errorf("%w: title must not be empty", domain.ErrValidation)
		}
		e.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		if strings.TrimSpace(*p.Description) == "" {
			return fmt.Errorf("%w: description must not be empty", domain.ErrValidation)
		}
		e.Description = strings.TrimSpace(*p.Description)
	}
	if p.Location != nil {
		if strings.TrimSpace(*p.Location) == "" {
			return fmt.Errorf("%w: location must not be empty", domain.ErrValidation)
		}
		e.Location = strings.TrimSpace(*p.Location)
	}
	if p.EventType != nil {
		if !p.EventType.Valid() {
			return fmt.Errorf("%w: unknown event_type %q", domain.ErrValidation, *p.EventType)
		}
		e.EventType = *p.EventType
	}
	if p.CategoryID != nil {
		e.CategoryID = p.CategoryID
	}
	if p.StartDate != nil {
		e.StartDate = p.StartDate.UTC()
	}
	if p.EndDate != nil {
		e.EndDate = p.EndDate.UTC()
	}
	if p.RegistrationDeadline != nil {
		e.RegistrationDeadline = utcPtr(p.RegistrationDeadline)
	}
	if p.MaxAttendees != nil {
		e.MaxAttendees = p.MaxAttendees
	}

	if p.ClearCategory {
		e.CategoryID = nil
	}
	if p.ClearRegistrationDeadline {
		e.RegistrationDeadline = nil
	}
	if p.ClearMaxAttendees {
		e.MaxAttendees = nil
	}
	return nil
}

func validateSchedule(e *domain.Event) error {
	if e.EndDate.Before(e.StartDate) {
		return fmt.Errorf("%w: end_date must not precede start_date", domain.ErrValidation)
	}
	if e.RegistrationDeadline != nil && e.RegistrationDeadline.After(e.EndDate) {
		return fmt.Errorf("%w: registration_deadline must not be after end_date", domain.ErrValidation)
	}
	if e.MaxAttendees != nil && *e.MaxAttendees <= 0 {
		return fmt.Errorf("%w: max_attendees must be positive", domain.ErrValidation)
	}
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
