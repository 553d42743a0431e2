package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RegistrationService struct {
	repo      ports.RegistrationRepo
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	notifier  ports.Notifier
	cache     ports.ReportCache
	logger    logger.Logger
	now       func() time.Time
}

func NewRegistrationService(
	repo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	cache ports.ReportCache,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		repo:      repo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		cache:     cache,
		logger:    logger,
		now:       time.Now,
	}
}

// Register is the direct RSVP path. Duplicate and capacity checks happen
// inside the repository transaction; the checks here only reject requests
// that can never succeed.
func (s *RegistrationService) Register(ctx context.Context, id domain.Identity, eventID string) (*domain.Registration, error) {
	if err := requireUser(id); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	now := s.now().UTC()
	if err = registrationOpen(event.Summary(), now); err != nil {
		return nil, err
	}
	if event.RequiresRegistration {
		return nil, domain.ErrFormRequired
	}

	reg := &domain.Registration{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    id.UserID,
		Status:    domain.RegistrationStatusRegistered,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.repo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("registration created",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", id.UserID),
	)
	invalidateReports(ctx, s.cache, s.logger)

	go s.notifyRegistered(context.WithoutCancel(ctx), id.UserID, event.Summary())

	return reg, nil
}

func (s *RegistrationService) notifyRegistered(ctx context.Context, userID string, event *domain.EventSummary) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for registration notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return
	}
	s.notifier.NotifyRegistered(ctx, user, event)
}

// Cancel removes the caller's registration, freeing the spot.
func (s *RegistrationService) Cancel(ctx context.Context, id domain.Identity, eventID string) error {
	if err := requireUser(id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, eventID, id.UserID); err != nil {
		return fmt.Errorf("cancel registration: %w", err)
	}

	s.logger.Info("registration cancelled",
		logger.String("event_id", eventID),
		logger.String("user_id", id.UserID),
	)
	invalidateReports(ctx, s.cache, s.logger)

	return nil
}

func (s *RegistrationService) MarkAttended(ctx context.Context, id domain.Identity, eventID, userID string, attended bool) (*domain.Registration, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}

	status := domain.RegistrationStatusRegistered
	if attended {
		status = domain.RegistrationStatusAttended
	}

	reg, err := s.repo.SetStatus(ctx, eventID, userID, status)
	if err != nil {
		return nil, fmt.Errorf("mark attendance: %w", err)
	}
	invalidateReports(ctx, s.cache, s.logger)

	return reg, nil
}

func (s *RegistrationService) ListByEvent(ctx context.Context, id domain.Identity, eventID string) ([]*domain.Registration, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	return s.repo.ListByEvent(ctx, eventID)
}

func (s *RegistrationService) ListMine(ctx context.Context, id domain.Identity) ([]*domain.Registration, error) {
	if err := requireUser(id); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, id.UserID)
}

// registrationOpen rejects events that no longer accept registrations.
func registrationOpen(e *domain.EventSummary, now time.Time) error {
	switch {
	case e.Status == domain.EventStatusCancelled:
		return domain.ErrEventCancelled
	case e.Status == domain.EventStatusCompleted || now.After(e.EndDate):
		return domain.ErrEventEnded
	case e.RegistrationDeadline != nil && now.After(*e.RegistrationDeadline):
		return domain.ErrDeadlinePassed
	}
	return nil
}
