package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
)

type SubmissionRepo interface {
	// Create inserts s under a lock on its event row. capacity <= 0 means unlimited.
	Create(ctx context.Context, s *domain.Submission, capacity int) error
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	UpdateStatus(ctx context.Context, id string, upd domain.StatusUpdate) (*domain.Submission, error)
	BulkApprove(ctx context.Context, ids []string, approverID string, at time.Time) (int, error)
	MarkAttendance(ctx context.Context, id string, attended bool, markerID string, at time.Time) (*domain.Submission, error)
	ListByEvent(ctx context.Context, eventID string, status domain.SubmissionStatus) ([]*domain.Submission, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Submission, error)
	AttendanceStats(ctx context.Context, eventID string) (*domain.AttendanceStats, error)
}
