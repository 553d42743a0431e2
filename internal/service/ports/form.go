package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type FormRepo interface {
	// Upsert replaces the form of f.EventID and all of its fields in one transaction.
	Upsert(ctx context.Context, f *domain.RegistrationForm) error
	GetByEvent(ctx context.Context, eventID string) (*domain.RegistrationForm, error)
	GetByID(ctx context.Context, id string) (*domain.RegistrationForm, error)
}
