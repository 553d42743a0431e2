package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultTopN = 5

type ReportService struct {
	repo   ports.ReportRepo
	cache  ports.ReportCache
	topN   int
	logger logger.Logger
}

// NewReportService builds the reporting service. cache may be nil.
func NewReportService(repo ports.ReportRepo, cache ports.ReportCache, topN int, logger logger.Logger) *ReportService {
	if topN <= 0 {
		topN = defaultTopN
	}
	return &ReportService{
		repo:   repo,
		cache:  cache,
		topN:   topN,
		logger: logger,
	}
}

func (s *ReportService) Overview(ctx context.Context, id domain.Identity) (*domain.Overview, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, ok, err := s.cache.GetOverview(ctx)
		if err != nil {
			s.logger.Warn("report cache read failed", logger.String("error", err.Error()))
		} else if ok {
			return cached, nil
		}
	}

	overview, err := s.repo.Overview(ctx, s.topN)
	if err != nil {
		return nil, fmt.Errorf("build overview: %w", err)
	}
	normalizeOverview(overview)

	if s.cache != nil {
		if err = s.cache.SetOverview(ctx, overview); err != nil {
			s.logger.Warn("report cache write failed", logger.String("error", err.Error()))
		}
	}

	return overview, nil
}

// normalizeOverview replaces nil lists so empty data renders as [] not null.
func normalizeOverview(o *domain.Overview) {
	if o.EventsByStatus == nil {
		o.EventsByStatus = []domain.StatusCount{}
	}
	if o.RegistrationsByStatus == nil {
		o.RegistrationsByStatus = []domain.StatusCount{}
	}
	if o.SubmissionsByStatus == nil {
		o.SubmissionsByStatus = []domain.StatusCount{}
	}
	if o.PopularEvents == nil {
		o.PopularEvents = []domain.PopularEvent{}
	}
	if o.RecentEvents == nil {
		o.RecentEvents = []*domain.Event{}
	}
}
