package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type FormService struct {
	repo       ports.FormRepo
	eventRepo  ports.EventRepo
	validators *Validators
	logger     logger.Logger
	now        func() time.Time
}

func NewFormService(
	repo ports.FormRepo,
	eventRepo ports.EventRepo,
	validators *Validators,
	logger logger.Logger,
) *FormService {
	return &FormService{
		repo:       repo,
		eventRepo:  eventRepo,
		validators: validators,
		logger:     logger,
		now:        time.Now,
	}
}

// UpsertForm attaches a registration form to an event, replacing any previous
// form fields wholesale. Field order follows the input order.
func (s *FormService) UpsertForm(ctx context.Context, id domain.Identity, input domain.UpsertFormInput) (*domain.RegistrationForm, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}
	if len(input.Fields) == 0 {
		return nil, fmt.Errorf("%w: at least one field is required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	now := s.now().UTC()
	form := &domain.RegistrationForm{
		ID:               uuid.New().String(),
		EventID:          event.ID,
		RequiresApproval: input.RequiresApproval,
		Fields:           make([]domain.RegistrationField, 0, len(input.Fields)),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	for i, f := range input.Fields {
		field, err := s.buildField(i, f)
		if err != nil {
			return nil, err
		}
		form.Fields = append(form.Fields, field)
	}

	if err = s.repo.Upsert(ctx, form); err != nil {
		return nil, fmt.Errorf("save form: %w", err)
	}
	form.Event = event.Summary()

	s.logger.Info("registration form saved",
		logger.String("form_id", form.ID),
		logger.String("event_id", event.ID),
		logger.Int("fields", len(form.Fields)),
	)

	return form, nil
}

func (s *FormService) buildField(order int, f domain.FieldInput) (domain.RegistrationField, error) {
	label := strings.TrimSpace(f.Label)
	if label == "" {
		return domain.RegistrationField{}, fmt.Errorf("%w: field %d: label is required", domain.ErrValidation, order+1)
	}
	if !s.validators.Supports(f.FieldType) {
		return domain.RegistrationField{}, fmt.Errorf("%w: field %q: unknown field type %q",
			domain.ErrValidation, label, f.FieldType)
	}

	options := make([]string, 0, len(f.Options))
	for _, o := range f.Options {
		if o = strings.TrimSpace(o); o != "" {
			options = append(options, o)
		}
	}
	// checkbox без вариантов считается одиночной галочкой и принимает только bool
	if (f.FieldType == domain.FieldTypeSelect || f.FieldType == domain.FieldTypeRadio) && len(options) == 0 {
		return domain.RegistrationField{}, fmt.Errorf("%w: field %q: options are required", domain.ErrValidation, label)
	}
	if _, err := ParseFieldRules(f.Validation); err != nil {
		return domain.RegistrationField{}, fmt.Errorf("%w: field %q: validation: %s", domain.ErrValidation, label, err.Error())
	}

	return domain.RegistrationField{
		ID:          uuid.New().String(),
		Label:       label,
		FieldType:   f.FieldType,
		Placeholder: f.Placeholder,
		Required:    f.Required,
		Options:     options,
		Order:       order,
		Validation:  f.Validation,
	}, nil
}

func (s *FormService) GetForm(ctx context.Context, eventID string) (*domain.RegistrationForm, error) {
	return s.repo.GetByEvent(ctx, eventID)
}
