package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/stpnv0/EventHub/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, id domain.Identity, input domain.CreateEventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id domain.Identity, eventID string, patch domain.UpdateEventInput) (*domain.Event, error)
	CancelEvent(ctx context.Context, id domain.Identity, eventID string) (*domain.Event, error)
	GetEvent(ctx context.Context, eventID string) (*domain.Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error)
	ListEvents(ctx context.Context, filter domain.EventFilter) (*domain.EventPage, error)
}

type RegistrationSvc interface {
	Register(ctx context.Context, id domain.Identity, eventID string) (*domain.Registration, error)
	Cancel(ctx context.Context, id domain.Identity, eventID string) error
	MarkAttended(ctx context.Context, id domain.Identity, eventID, userID string, attended bool) (*domain.Registration, error)
	ListByEvent(ctx context.Context, id domain.Identity, eventID string) ([]*domain.Registration, error)
	ListMine(ctx context.Context, id domain.Identity) ([]*domain.Registration, error)
}

type FormSvc interface {
	UpsertForm(ctx context.Context, id domain.Identity, input domain.UpsertFormInput) (*domain.RegistrationForm, error)
	GetForm(ctx context.Context, eventID string) (*domain.RegistrationForm, error)
}

type SubmissionSvc interface {
	Submit(ctx context.Context, id domain.Identity, formID string, responses domain.Responses) (*domain.Submission, error)
	UpdateStatus(
		ctx context.Context,
		id domain.Identity,
		submissionID string,
		status domain.SubmissionStatus,
		rejectionReason string,
	) (*domain.Submission, error)
	BulkApprove(ctx context.Context, id domain.Identity, submissionIDs []string) (int, error)
	MarkAttendance(ctx context.Context, id domain.Identity, submissionID string, attended bool) (*domain.Submission, error)
	AttendanceStats(ctx context.Context, id domain.Identity, eventID string) (*domain.AttendanceStats, error)
	ListByEvent(ctx context.Context, id domain.Identity, eventID string, status domain.SubmissionStatus) ([]*domain.Submission, error)
	ListMine(ctx context.Context, id domain.Identity) ([]*domain.Submission, error)
}

type UserSvc interface {
	Create(ctx context.Context, id domain.Identity, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, id domain.Identity) ([]*domain.User, error)
}

type ReportSvc interface {
	Overview(ctx context.Context, id domain.Identity) (*domain.Overview, error)
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	formService         FormSvc
	submissionService   SubmissionSvc
	userService         UserSvc
	reportService       ReportSvc
}

func NewHandler(
	eventService EventSvc,
	registrationService RegistrationSvc,
	formService FormSvc,
	submissionService SubmissionSvc,
	userService UserSvc,
	reportService ReportSvc,
) *Handler {
	return &Handler{
		eventService:        eventService,
		registrationService: registrationService,
		formService:         formService,
		submissionService:   submissionService,
		userService:         userService,
		reportService:       reportService,
	}
}

// identity returns the authenticated caller or writes 401.
func (h *Handler) identity(c *ginext.Context) (domain.Identity, bool) {
	id, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("authentication required"))
		return domain.Identity{}, false
	}
	return id, true
}

// uuidParam reads a path parameter that must be a UUID or writes 400.
func (h *Handler) uuidParam(c *ginext.Context, name, what string) (string, bool) {
	v := c.Param(name)
	if _, err := uuid.Parse(v); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(fmt.Sprintf("invalid %s id", what)))
		return "", false
	}
	return v, true
}

func parseTime(field, v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid %s format, expected RFC3339", domain.ErrValidation, field)
	}
	return t, nil
}

func parseTimePtr(field string, v *string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	t, err := parseTime(field, *v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrFormNotFound),
		errors.Is(err, domain.ErrSubmissionNotFound):
		c.JSON(http.StatusNotFound, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrAlreadySubmitted),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrSlugTaken):
		c.JSON(http.StatusConflict, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrDeadlinePassed),
		errors.Is(err, domain.ErrEventCancelled),
		errors.Is(err, domain.ErrEventEnded),
		errors.Is(err, domain.ErrSubmissionNotApproved),
		errors.Is(err, domain.ErrFormRequired):
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Error(err.Error()))

	default:
		c.JSON(http.StatusInternalServerError, dto.Error("internal server error"))
	}
}
