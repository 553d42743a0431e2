package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type RegistrationRepo interface {
	// Create inserts r while holding a lock on the event row, so the
	// duplicate and capacity checks cannot race with concurrent inserts.
	Create(ctx context.Context, r *domain.Registration) error
	Delete(ctx context.Context, eventID, userID string) error
	SetStatus(ctx context.Context, eventID, userID string, status domain.RegistrationStatus) (*domain.Registration, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error)
}
