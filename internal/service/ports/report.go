package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type ReportRepo interface {
	Overview(ctx context.Context, topN int) (*domain.Overview, error)
}

type ReportCache interface {
	GetOverview(ctx context.Context) (*domain.Overview, bool, error)
	SetOverview(ctx context.Context, o *domain.Overview) error
	Invalidate(ctx context.Context) error
}
