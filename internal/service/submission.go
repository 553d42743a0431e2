package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SubmissionService struct {
	repo       ports.SubmissionRepo
	formRepo   ports.FormRepo
	eventRepo  ports.EventRepo
	userRepo   ports.UserRepo
	notifier   ports.Notifier
	cache      ports.ReportCache
	validators *Validators
	logger     logger.Logger
	now        func() time.Time
}

func NewSubmissionService(
	repo ports.SubmissionRepo,
	formRepo ports.FormRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	cache ports.ReportCache,
	validators *Validators,
	logger logger.Logger,
) *SubmissionService {
	return &SubmissionService{
		repo:       repo,
		formRepo:   formRepo,
		eventRepo:  eventRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		cache:      cache,
		validators: validators,
		logger:     logger,
		now:        time.Now,
	}
}

// Submit stores the caller's answers to a registration form. Forms without
// approval produce an APPROVED submission straight away.
func (s *SubmissionService) Submit(ctx context.Context, id domain.Identity, formID string, responses domain.Responses) (*domain.Submission, error) {
	if err := requireUser(id); err != nil {
		return nil, err
	}

	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("get form: %w", err)
	}

	now := s.now().UTC()
	if err = registrationOpen(form.Event, now); err != nil {
		return nil, err
	}
	if err = s.validate(form, responses); err != nil {
		return nil, err
	}

	sub := &domain.Submission{
		ID:        uuid.New().String(),
		FormID:    form.ID,
		EventID:   form.EventID,
		UserID:    id.UserID,
		Responses: responses,
		Status:    domain.SubmissionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if !form.RequiresApproval {
		sub.Status = domain.SubmissionStatusApproved
		sub.ApprovedAt = &now
	}

	capacity := 0
	if form.Event.MaxAttendees != nil {
		capacity = *form.Event.MaxAttendees
	}
	if err = s.repo.Create(ctx, sub, capacity); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	s.logger.Info("submission created",
		logger.String("submission_id", sub.ID),
		logger.String("event_id", sub.EventID),
		logger.String("user_id", sub.UserID),
		logger.String("status", string(sub.Status)),
	)
	invalidateReports(ctx, s.cache, s.logger)

	go s.notify(context.WithoutCancel(ctx), sub, form.Event, s.notifier.NotifySubmissionReceived)

	return sub, nil
}

// validate checks answers in field order and stops at the first problem.
func (s *SubmissionService) validate(form *domain.RegistrationForm, responses domain.Responses) error {
	known := make(map[string]struct{}, len(form.Fields))
	for _, f := range form.Fields {
		known[f.ID] = struct{}{}
	}
	unknown := make([]string, 0)
	for fieldID := range responses {
		if _, ok := known[fieldID]; !ok {
			unknown = append(unknown, fieldID)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return fmt.Errorf("%w: unknown fields: %s", domain.ErrValidation, strings.Join(unknown, ", "))
	}

	fields := slices.Clone(form.Fields)
	slices.SortStableFunc(fields, func(a, b domain.RegistrationField) int { return a.Order - b.Order })

	for _, f := range fields {
		value, ok := responses[f.ID]
		if !ok || !answered(f, value) {
			if f.Required {
				return fmt.Errorf("%w: %s is required", domain.ErrValidation, f.Label)
			}
			continue
		}
		if err := s.validators.Validate(f, value); err != nil {
			return err
		}
	}
	return nil
}

// UpdateStatus records an admin decision. Leaving APPROVED drops any
// attendance mark.
func (s *SubmissionService) UpdateStatus(
	ctx context.Context,
	id domain.Identity,
	submissionID string,
	status domain.SubmissionStatus,
	rejectionReason string,
) (*domain.Submission, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}
	if !status.Decision() {
		return nil, fmt.Errorf("%w: status must be one of APPROVED, REJECTED, WAITLISTED", domain.ErrValidation)
	}

	upd := domain.StatusUpdate{Status: status}
	switch status {
	case domain.SubmissionStatusApproved:
		now := s.now().UTC()
		approver := id.UserID
		upd.ApprovedBy = &approver
		upd.ApprovedAt = &now
	case domain.SubmissionStatusRejected:
		reason := strings.TrimSpace(rejectionReason)
		if reason == "" {
			return nil, fmt.Errorf("%w: rejection_reason is required", domain.ErrValidation)
		}
		upd.RejectionReason = &reason
	}

	sub, err := s.repo.UpdateStatus(ctx, submissionID, upd)
	if err != nil {
		return nil, fmt.Errorf("update submission status: %w", err)
	}

	s.logger.Info("submission status updated",
		logger.String("submission_id", sub.ID),
		logger.String("status", string(sub.Status)),
		logger.String("admin_id", id.UserID),
	)
	invalidateReports(ctx, s.cache, s.logger)

	go s.notifyStatus(context.WithoutCancel(ctx), sub)

	return sub, nil
}

// BulkApprove approves the given submissions that are still PENDING; others
// are left untouched. It returns the number of approved submissions.
func (s *SubmissionService) BulkApprove(ctx context.Context, id domain.Identity, submissionIDs []string) (int, error) {
	if err := requireAdmin(id); err != nil {
		return 0, err
	}

	ids := make([]string, 0, len(submissionIDs))
	for _, sid := range submissionIDs {
		if _, err := uuid.Parse(sid); err != nil {
			return 0, fmt.Errorf("%w: invalid submission id %q", domain.ErrValidation, sid)
		}
		if !slices.Contains(ids, sid) {
			ids = append(ids, sid)
		}
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: submission_ids must not be empty", domain.ErrValidation)
	}

	count, err := s.repo.BulkApprove(ctx, ids, id.UserID, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("bulk approve: %w", err)
	}

	s.logger.Info("submissions bulk approved",
		logger.Int("requested", len(ids)),
		logger.Int("approved", count),
	)
	if count > 0 {
		invalidateReports(ctx, s.cache, s.logger)
	}

	return count, nil
}

func (s *SubmissionService) MarkAttendance(ctx context.Context, id domain.Identity, submissionID string, attended bool) (*domain.Submission, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	if current.Status != domain.SubmissionStatusApproved {
		return nil, fmt.Errorf("%w: current status is %s", domain.ErrSubmissionNotApproved, current.Status)
	}

	sub, err := s.repo.MarkAttendance(ctx, submissionID, attended, id.UserID, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("mark attendance: %w", err)
	}

	s.logger.Info("attendance marked",
		logger.String("submission_id", sub.ID),
		logger.Any("attended", attended),
	)

	return sub, nil
}

func (s *SubmissionService) AttendanceStats(ctx context.Context, id domain.Identity, eventID string) (*domain.AttendanceStats, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	stats, err := s.repo.AttendanceStats(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("attendance stats: %w", err)
	}
	stats.EventID = eventID
	stats.AttendanceRate = domain.AttendanceRate(stats.Attended, stats.Approved)

	return stats, nil
}

func (s *SubmissionService) ListByEvent(
	ctx context.Context,
	id domain.Identity,
	eventID string,
	status domain.SubmissionStatus,
) ([]*domain.Submission, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	return s.repo.ListByEvent(ctx, eventID, status)
}

func (s *SubmissionService) ListMine(ctx context.Context, id domain.Identity) ([]*domain.Submission, error) {
	if err := requireUser(id); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, id.UserID)
}

func (s *SubmissionService) notifyStatus(ctx context.Context, sub *domain.Submission) {
	event, err := s.eventRepo.GetByID(ctx, sub.EventID)
	if err != nil {
		s.logger.Error("failed to get event for status notification",
			logger.String("event_id", sub.EventID),
			logger.String("error", err.Error()),
		)
		return
	}
	s.notify(ctx, sub, event.Summary(), s.notifier.NotifySubmissionStatus)
}

func (s *SubmissionService) notify(
	ctx context.Context,
	sub *domain.Submission,
	event *domain.EventSummary,
	send func(context.Context, *domain.User, *domain.EventSummary, *domain.Submission),
) {
	user, err := s.userRepo.GetByID(ctx, sub.UserID)
	if err != nil {
		s.logger.Error("failed to get user for submission notification",
			logger.String("user_id", sub.UserID),
			logger.String("error", err.Error()),
		)
		return
	}
	send(ctx, user, event, sub)
}
