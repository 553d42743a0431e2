package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, int, error)
	RefreshStatuses(ctx context.Context, now time.Time) ([]domain.StatusChange, error)
}
