package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

func requireUser(id domain.Identity) error {
	if id.UserID == "" {
		return domain.ErrUnauthorized
	}
	return nil
}

func requireAdmin(id domain.Identity) error {
	if err := requireUser(id); err != nil {
		return err
	}
	if !id.IsAdmin() {
		return fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	return nil
}

// invalidateReports drops the cached overview after a write that changes counts.
func invalidateReports(ctx context.Context, cache ports.ReportCache, log logger.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		log.Warn("failed to invalidate report cache", logger.String("error", err.Error()))
	}
}
