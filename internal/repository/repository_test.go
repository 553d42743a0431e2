package repository

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

// Интеграционные тесты: нужен живой postgres, например
// EVENTHUB_TEST_DSN="host=localhost port=5432 user=postgres password=postgres dbname=eventhub_test sslmode=disable"
const testDSNEnv = "EVENTHUB_TEST_DSN"

func testDB(t *testing.T) *dbpg.DB {
	t.Helper()
	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", testDSNEnv)
	}

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 30, MaxIdleConns: 10})
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db.Master))

	truncate := func() {
		_, err := db.Master.Exec(`TRUNCATE registration_submissions, registration_fields,
			registration_forms, event_registrations, events, users CASCADE`)
		require.NoError(t, err)
	}
	truncate()
	t.Cleanup(func() {
		truncate()
		_ = db.Master.Close()
	})

	return db
}

func seedEvent(t *testing.T, repo *EventRepository, title string, maxAttendees *int) *domain.Event {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	e := &domain.Event{
		ID:           uuid.New().String(),
		Title:        title,
		Slug:         "event-" + uuid.New().String(),
		Description:  "integration",
		Location:     "Room 1",
		EventType:    domain.EventTypeWorkshop,
		StartDate:    now.Add(24 * time.Hour),
		EndDate:      now.Add(26 * time.Hour),
		MaxAttendees: maxAttendees,
		Status:       domain.EventStatusUpcoming,
		CreatedBy:    uuid.New().String(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(context.Background(), e))
	return e
}

func intPtr(v int) *int { return &v }

func TestEventRepository_CreateAndGet(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	e := seedEvent(t, repo, "Go Meetup", intPtr(10))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.Title, got.Title)
	assert.Equal(t, 10, *got.MaxAttendees)
	assert.Nil(t, got.RegistrationDeadline)
	assert.Zero(t, got.RegistrationCount)

	bySlug, err := repo.GetBySlug(ctx, e.Slug)
	require.NoError(t, err)
	assert.Equal(t, e.ID, bySlug.ID)

	_, err = repo.GetByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventRepository_SlugTaken(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepo(db)

	e := seedEvent(t, repo, "Go Meetup", nil)

	dup := *e
	dup.ID = uuid.New().String()
	err := repo.Create(context.Background(), &dup)

	assert.ErrorIs(t, err, domain.ErrSlugTaken)
}

func TestEventRepository_UpdateKeepsCancelled(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	e := seedEvent(t, repo, "Go Meetup", nil)
	e.Status = domain.EventStatusCancelled
	require.NoError(t, repo.Update(ctx, e))

	e.Status = domain.EventStatusOngoing
	e.Title = "Renamed"
	require.NoError(t, repo.Update(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusCancelled, got.Status)
	assert.Equal(t, "Renamed", got.Title)
}

func TestEventRepository_ListFilters(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	seedEvent(t, repo, "Go Workshop", nil)
	seedEvent(t, repo, "Rust Workshop", nil)
	seedEvent(t, repo, "100% Fun", nil)

	events, total, err := repo.List(ctx, domain.EventFilter{Search: "workshop", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, events, 2)

	events, total, err = repo.List(ctx, domain.EventFilter{Search: "%", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, events, 1)

	events, total, err = repo.List(ctx, domain.EventFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, events, 1)
}

func TestEventRepository_RefreshStatuses(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	running := seedEvent(t, repo, "Running", nil)
	cancelled := seedEvent(t, repo, "Cancelled", nil)
	cancelled.Status = domain.EventStatusCancelled
	require.NoError(t, repo.Update(ctx, cancelled))

	at := running.StartDate.Add(time.Hour)
	changes, err := repo.RefreshStatuses(ctx, at)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, running.ID, changes[0].EventID)
	assert.Equal(t, domain.EventStatusOngoing, changes[0].To)

	got, err := repo.GetByID(ctx, cancelled.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusCancelled, got.Status)
}

func TestRegistrationRepository_CapacityUnderConcurrency(t *testing.T) {
	db := testDB(t)
	events := NewEventRepo(db)
	repo := NewRegistrationRepo(db)
	ctx := context.Background()

	const capacity, extra = 5, 15
	e := seedEvent(t, events, "Small room", intPtr(capacity))

	var (
		wg       sync.WaitGroup
		created  atomic.Int32
		full     atomic.Int32
		failures atomic.Int32
	)
	for i := 0; i < capacity+extra; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			now := time.Now().UTC()
			err := repo.Create(ctx, &domain.Registration{
				ID: uuid.New().String(), EventID: e.ID, UserID: uuid.New().String(),
				Status: domain.RegistrationStatusRegistered, CreatedAt: now, UpdatedAt: now,
			})
			switch {
			case err == nil:
				created.Add(1)
			case errors.Is(err, domain.ErrEventFull):
				full.Add(1)
			default:
				failures.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(capacity), created.Load())
	assert.Equal(t, int32(extra), full.Load())
	assert.Zero(t, failures.Load())

	regs, err := repo.ListByEvent(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, regs, capacity)
}

func TestRegistrationRepository_DuplicateAndDelete(t *testing.T) {
	db := testDB(t)
	events := NewEventRepo(db)
	repo := NewRegistrationRepo(db)
	ctx := context.Background()

	e := seedEvent(t, events, "Meetup", nil)
	userID := uuid.New().String()
	now := time.Now().UTC()
	reg := &domain.Registration{
		ID: uuid.New().String(), EventID: e.ID, UserID: userID,
		Status: domain.RegistrationStatusRegistered, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, reg))

	dup := *reg
	dup.ID = uuid.New().String()
	assert.ErrorIs(t, repo.Create(ctx, &dup), domain.ErrAlreadyRegistered)

	updated, err := repo.SetStatus(ctx, e.ID, userID, domain.RegistrationStatusAttended)
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusAttended, updated.Status)

	mine, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	require.NoError(t, repo.Delete(ctx, e.ID, userID))
	assert.ErrorIs(t, repo.Delete(ctx, e.ID, userID), domain.ErrRegistrationNotFound)

	err = repo.Create(ctx, &domain.Registration{
		ID: uuid.New().String(), EventID: uuid.New().String(), UserID: userID,
		Status: domain.RegistrationStatusRegistered, CreatedAt: now, UpdatedAt: now,
	})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func newRegistration(eventID string) *domain.Registration {
	now := time.Now().UTC()
	return &domain.Registration{
		ID: uuid.New().String(), EventID: eventID, UserID: uuid.New().String(),
		Status: domain.RegistrationStatusRegistered, CreatedAt: now, UpdatedAt: now,
	}
}

func TestRegistrationRepository_FreedSpotCanBeTaken(t *testing.T) {
	db := testDB(t)
	events := NewEventRepo(db)
	repo := NewRegistrationRepo(db)
	ctx := context.Background()

	e := seedEvent(t, events, "One seat", intPtr(1))
	first := newRegistration(e.ID)
	second := newRegistration(e.ID)

	require.NoError(t, repo.Create(ctx, first))
	assert.ErrorIs(t, repo.Create(ctx, second), domain.ErrEventFull)

	require.NoError(t, repo.Delete(ctx, e.ID, first.UserID))
	require.NoError(t, repo.Create(ctx, second))

	regs, err := repo.ListByEvent(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, second.UserID, regs[0].UserID)
}

func TestRegistrationRepository_FormGatedEvent(t *testing.T) {
	db := testDB(t)
	events := NewEventRepo(db)
	forms := NewFormRepo(db)
	repo := NewRegistrationRepo(db)
	ctx := context.Background()

	e := seedEvent(t, events, "Hackathon", nil)
	seedForm(t, forms, e.ID, true, "Name")

	assert.ErrorIs(t, repo.Create(ctx, newRegistration(e.ID)), domain.ErrFormRequired)
}

func TestRepositories_ShareEventCapacity(t *testing.T) {
	db := testDB(t)
	events := NewEventRepo(db)
	forms := NewFormRepo(db)
	regs := NewRegistrationRepo(db)
	subs := NewSubmissionRepo(db)
	ctx := context.Background()

	// регистрация сделана до появления формы и занимает единственное место
	e := seedEvent(t, events, "One seat", intPtr(1))
	require.NoError(t, regs.Create(ctx, newRegistration(e.ID)))
	form := seedForm(t, forms, e.ID, true, "Name")

	err := subs.Create(ctx, newSubmission(form, domain.SubmissionStatusPending), 1)
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func seedForm(t *testing.T, repo *FormRepository, eventID string, requiresApproval bool, labels ...string) *domain.RegistrationForm {
	t.Helper()
	now := time.Now().UTC()
	f := &domain.RegistrationForm{
		ID:               uuid.New().String(),
		EventID:          eventID,
		RequiresApproval: requiresApproval,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for i, label := range labels {
		f.Fields = append(f.Fields, domain.RegistrationField{
			ID: uuid.New().String(), Label: label, FieldType: domain.FieldTypeText, Order: i,
		})
	}
	require.NoError(t, repo.Upsert(context.Background(), f))
	return f
}

func TestFormRepository_UpsertReplacesFields(t *testing.T) {
	db := testDB(t)
	events := NewEventRepo(db)
	repo := NewFormRepo(db)
	ctx := context.Background()

	e := seedEvent(t, events, "Hackathon", intPtr(50))
	first := seedForm(t, repo, e.ID, false, "Name", "Team", "Stack")
	second := seedForm(t, repo, e.ID, true, "Nickname")

	assert.Equal(t, first.ID, second.ID)

	got, err := repo.GetByEvent(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, got.RequiresApproval)
	require.Len(t, got.Fields, 1)
	assert.Equal(t, "Nickname", got.Fields[0].Label)
	require.NotNil(t, got.Event)
	assert.Equal(t, 50, *got.Event.MaxAttendees)

	byID, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, byID.EventID)

	stored, err := events.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, stored.RequiresRegistration)

	_, err = repo.GetByEvent(ctx, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrFormNotFound)
}

func newSubmission(form *domain.RegistrationForm, status domain.SubmissionStatus) *domain.Submission {
	now := time.Now().UTC()
	return &domain.Submission{
		ID:        uuid.New().String(),
		FormID:    form.ID,
		EventID:   form.EventID,
		UserID:    uuid.New().String(),
		Responses: domain.Responses{"name": domain.StringValue("Alice"), "age": domain.NumberValue(20)},
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSubmissionRepository_CapacityUnderConcurrency(t *testing.T) {
	db := testDB(t)
	events := NewEventRepo(db)
	forms := NewFormRepo(db)
	repo := NewSubmissionRepo(db)
	ctx := context.Background()

	const capacity, extra = 3, 9
	e := seedEvent(t, events, "Tiny", intPtr(capacity))
	form := seedForm(t, forms, e.ID, true, "Name")

	var (
		wg      sync.WaitGroup
		created atomic.Int32
		full    atomic.Int32
	)
	for i := 0; i < capacity+extra; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Create(ctx, newSubmission(form, domain.SubmissionStatusPending), capacity)
			if err == nil {
				created.Add(1)
			} else if errors.Is(err, domain.ErrEventFull) {
				full.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(capacity), created.Load())
	assert.Equal(t, int32(extra), full.Load())
}

func TestSubmissionRepository_Lifecycle(t *testing.T) {
	db := testDB(t)
	events := NewEventRepo(db)
	forms := NewFormRepo(db)
	repo := NewSubmissionRepo(db)
	ctx := context.Background()

	e := seedEvent(t, events, "Conference", nil)
	form := seedForm(t, forms, e.ID, true, "Name")

	sub := newSubmission(form, domain.SubmissionStatusPending)
	require.NoError(t, repo.Create(ctx, sub, 0))

	dup := newSubmission(form, domain.SubmissionStatusPending)
	dup.UserID = sub.UserID
	assert.ErrorIs(t, repo.Create(ctx, dup, 0), domain.ErrAlreadySubmitted)

	got, err := repo.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Responses["name"].String)
	assert.Equal(t, 20.0, got.Responses["age"].Number)

	_, err = repo.MarkAttendance(ctx, sub.ID, true, "admin", time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrSubmissionNotApproved)

	approver := "admin"
	at := time.Now().UTC()
	approved, err := repo.UpdateStatus(ctx, sub.ID, domain.StatusUpdate{
		Status: domain.SubmissionStatusApproved, ApprovedBy: &approver, ApprovedAt: &at,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionStatusApproved, approved.Status)

	marked, err := repo.MarkAttendance(ctx, sub.ID, true, "admin", time.Now().UTC())
	require.NoError(t, err)
	require.NotNil(t, marked.Attended)
	assert.True(t, *marked.Attended)

	stats, err := repo.AttendanceStats(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Approved)
	assert.Equal(t, 1, stats.Attended)

	waitlisted, err := repo.UpdateStatus(ctx, sub.ID, domain.StatusUpdate{Status: domain.SubmissionStatusWaitlisted})
	require.NoError(t, err)
	assert.Nil(t, waitlisted.Attended)
	assert.Nil(t, waitlisted.AttendanceBy)

	_, err = repo.MarkAttendance(ctx, uuid.New().String(), true, "admin", time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrSubmissionNotFound)
	_, err = repo.UpdateStatus(ctx, uuid.New().String(), domain.StatusUpdate{Status: domain.SubmissionStatusWaitlisted})
	assert.ErrorIs(t, err, domain.ErrSubmissionNotFound)
}

func TestSubmissionRepository_ApproveRechecksCapacity(t *testing.T) {
	db := testDB(t)
	events := NewEventRepo(db)
	forms := NewFormRepo(db)
	repo := NewSubmissionRepo(db)
	ctx := context.Background()

	e := seedEvent(t, events, "One seat", intPtr(1))
	form := seedForm(t, forms, e.ID, true, "Name")

	waitlisted := newSubmission(form, domain.SubmissionStatusWaitlisted)
	require.NoError(t, repo.Create(ctx, waitlisted, 1))
	pending := newSubmission(form, domain.SubmissionStatusPending)
	require.NoError(t, repo.Create(ctx, pending, 1))

	approver := "admin"
	at := time.Now().UTC()
	approve := domain.StatusUpdate{Status: domain.SubmissionStatusApproved, ApprovedBy: &approver, ApprovedAt: &at}

	_, err := repo.UpdateStatus(ctx, waitlisted.ID, approve)
	assert.ErrorIs(t, err, domain.ErrEventFull)

	// PENDING уже держит место, одобрение проходит
	_, err = repo.UpdateStatus(ctx, pending.ID, approve)
	require.NoError(t, err)

	reason := "changed plans"
	_, err = repo.UpdateStatus(ctx, pending.ID, domain.StatusUpdate{
		Status: domain.SubmissionStatusRejected, RejectionReason: &reason,
	})
	require.NoError(t, err)

	approved, err := repo.UpdateStatus(ctx, waitlisted.ID, approve)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionStatusApproved, approved.Status)
}

func TestSubmissionRepository_BulkApproveOnlyPending(t *testing.T) {
	db := testDB(t)
	events := NewEventRepo(db)
	forms := NewFormRepo(db)
	repo := NewSubmissionRepo(db)
	ctx := context.Background()

	e := seedEvent(t, events, "Bulk", nil)
	form := seedForm(t, forms, e.ID, true, "Name")

	pending := newSubmission(form, domain.SubmissionStatusPending)
	rejected := newSubmission(form, domain.SubmissionStatusRejected)
	require.NoError(t, repo.Create(ctx, pending, 0))
	require.NoError(t, repo.Create(ctx, rejected, 0))

	n, err := repo.BulkApprove(ctx, []string{pending.ID, rejected.ID, uuid.New().String()}, "admin", time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	approved, err := repo.ListByEvent(ctx, e.ID, domain.SubmissionStatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, pending.ID, approved[0].ID)

	all, err := repo.ListByEvent(ctx, e.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := repo.ListByUser(ctx, rejected.UserID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestUserRepository(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	chatID := int64(777)
	u := &domain.User{
		ID: uuid.New().String(), Username: "alice", Email: "alice@example.com",
		Role: domain.RoleStudent, TelegramChatID: &chatID, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, u))

	dup := *u
	dup.ID = uuid.New().String()
	assert.ErrorIs(t, repo.Create(ctx, &dup), domain.ErrUsernameTaken)

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, chatID, *got.TelegramChatID)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	found, err := repo.GetByIDs(ctx, []string{u.ID, uuid.New().String()})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "alice", found[0].Username)

	none, err := repo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = repo.GetByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestReportRepository_Overview(t *testing.T) {
	db := testDB(t)
	events := NewEventRepo(db)
	regs := NewRegistrationRepo(db)
	repo := NewReportRepo(db)
	ctx := context.Background()

	busy := seedEvent(t, events, "Busy", nil)
	seedEvent(t, events, "Quiet", nil)
	for i := 0; i < 3; i++ {
		now := time.Now().UTC()
		require.NoError(t, regs.Create(ctx, &domain.Registration{
			ID: uuid.New().String(), EventID: busy.ID, UserID: uuid.New().String(),
			Status: domain.RegistrationStatusRegistered, CreatedAt: now, UpdatedAt: now,
		}))
	}

	o, err := repo.Overview(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, o.TotalEvents)
	assert.Equal(t, 3, o.TotalRegistrations)
	assert.Zero(t, o.TotalSubmissions)
	require.Len(t, o.PopularEvents, 1)
	assert.Equal(t, busy.ID, o.PopularEvents[0].EventID)
	assert.Equal(t, 3, o.PopularEvents[0].Registrations)
	assert.Len(t, o.RecentEvents, 2)
}
