package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type Notifier interface {
	NotifyRegistered(ctx context.Context, user *domain.User, event *domain.EventSummary)
	NotifySubmissionReceived(ctx context.Context, user *domain.User, event *domain.EventSummary, sub *domain.Submission)
	NotifySubmissionStatus(ctx context.Context, user *domain.User, event *domain.EventSummary, sub *domain.Submission)
	NotifyEventCancelled(ctx context.Context, user *domain.User, event *domain.EventSummary)
}
