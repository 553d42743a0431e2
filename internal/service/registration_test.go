package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type registrationMocks struct {
	repo      *mocks.MockRegistrationRepo
	eventRepo *mocks.MockEventRepo
	userRepo  *mocks.MockUserRepo
	notifier  *mocks.MockNotifier
}

func newRegistrationService(t *testing.T) (*RegistrationService, registrationMocks) {
	m := registrationMocks{
		repo:      mocks.NewMockRegistrationRepo(t),
		eventRepo: mocks.NewMockEventRepo(t),
		userRepo:  mocks.NewMockUserRepo(t),
		notifier:  mocks.NewMockNotifier(t),
	}
	svc := NewRegistrationService(m.repo, m.eventRepo, m.userRepo, m.notifier, nil, newTestLogger(t))
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func TestRegistrationService_Register_Success(t *testing.T) {
	svc, m := newRegistrationService(t)

	user := &domain.User{ID: "u1", Username: "alice"}
	event := storedEvent()
	event.RegistrationDeadline = timePtr(fixedNow.Add(time.Hour))

	var wg sync.WaitGroup
	wg.Add(1)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.Registration) bool {
		return r.EventID == "e1" && r.UserID == "u1" && r.Status == domain.RegistrationStatusRegistered
	})).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyRegistered(mock.Anything, user, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.EventSummary) { wg.Done() }).
		Return()

	reg, err := svc.Register(context.Background(), student, "e1")

	require.NoError(t, err)
	assert.NotEmpty(t, reg.ID)
	assert.Equal(t, domain.RegistrationStatusRegistered, reg.Status)
	assert.Equal(t, fixedNow, reg.CreatedAt)

	waitAsync(t, &wg)
}

func TestRegistrationService_Register_Closed(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(e *domain.Event)
		wantErr error
	}{
		{
			name:    "cancelled",
			modify:  func(e *domain.Event) { e.Status = domain.EventStatusCancelled },
			wantErr: domain.ErrEventCancelled,
		},
		{
			name:    "completed",
			modify:  func(e *domain.Event) { e.Status = domain.EventStatusCompleted },
			wantErr: domain.ErrEventEnded,
		},
		{
			name: "end date passed",
			modify: func(e *domain.Event) {
				e.StartDate = fixedNow.Add(-3 * time.Hour)
				e.EndDate = fixedNow.Add(-time.Hour)
			},
			wantErr: domain.ErrEventEnded,
		},
		{
			name:    "deadline passed",
			modify:  func(e *domain.Event) { e.RegistrationDeadline = timePtr(fixedNow.Add(-time.Minute)) },
			wantErr: domain.ErrDeadlinePassed,
		},
		{
			name:    "registration goes through the form",
			modify:  func(e *domain.Event) { e.RequiresRegistration = true },
			wantErr: domain.ErrFormRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRegistrationService(t)

			event := storedEvent()
			tt.modify(event)
			m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

			_, err := svc.Register(context.Background(), student, "e1")

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistrationService_Register_RepoConflicts(t *testing.T) {
	for _, repoErr := range []error{domain.ErrEventFull, domain.ErrAlreadyRegistered} {
		t.Run(repoErr.Error(), func(t *testing.T) {
			svc, m := newRegistrationService(t)

			m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(storedEvent(), nil)
			m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

			_, err := svc.Register(context.Background(), student, "e1")

			assert.ErrorIs(t, err, repoErr)
		})
	}
}

func TestRegistrationService_Register_EventNotFound(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Register(context.Background(), student, "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistrationService_Register_Unauthenticated(t *testing.T) {
	svc, _ := newRegistrationService(t)

	_, err := svc.Register(context.Background(), domain.Identity{}, "e1")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegistrationService_Cancel(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.repo.EXPECT().Delete(mock.Anything, "e1", "u1").Return(nil)

	require.NoError(t, svc.Cancel(context.Background(), student, "e1"))
}

func TestRegistrationService_Cancel_NotFound(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.repo.EXPECT().Delete(mock.Anything, "e1", "u1").Return(domain.ErrRegistrationNotFound)

	err := svc.Cancel(context.Background(), student, "e1")

	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestRegistrationService_MarkAttended(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.repo.EXPECT().SetStatus(mock.Anything, "e1", "u1", domain.RegistrationStatusAttended).
		Return(&domain.Registration{ID: "r1", Status: domain.RegistrationStatusAttended}, nil)
	m.repo.EXPECT().SetStatus(mock.Anything, "e1", "u2", domain.RegistrationStatusRegistered).
		Return(&domain.Registration{ID: "r2", Status: domain.RegistrationStatusRegistered}, nil)

	reg, err := svc.MarkAttended(context.Background(), admin, "e1", "u1", true)
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusAttended, reg.Status)

	reg, err = svc.MarkAttended(context.Background(), admin, "e1", "u2", false)
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusRegistered, reg.Status)
}

func TestRegistrationService_MarkAttended_Forbidden(t *testing.T) {
	svc, _ := newRegistrationService(t)

	_, err := svc.MarkAttended(context.Background(), student, "e1", "u1", true)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegistrationService_ListByEvent(t *testing.T) {
	svc, m := newRegistrationService(t)

	regs := []*domain.Registration{{ID: "r1"}, {ID: "r2"}}
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(storedEvent(), nil)
	m.repo.EXPECT().ListByEvent(mock.Anything, "e1").Return(regs, nil)

	got, err := svc.ListByEvent(context.Background(), admin, "e1")

	require.NoError(t, err)
	assert.Equal(t, regs, got)
}

func TestRegistrationService_ListMine(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.repo.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.Registration{{ID: "r1"}}, nil)

	got, err := svc.ListMine(context.Background(), student)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
