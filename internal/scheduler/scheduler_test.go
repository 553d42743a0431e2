package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// runAsync starts s and returns a function that cancels it and waits for exit.
func runAsync(t *testing.T, s *Scheduler) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()
	return func() {
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop on context cancel")
		}
	}
}

func TestScheduler_Tick_RefreshesStatuses(t *testing.T) {
	refresher := mocks.NewMockStatusRefresher(t)

	s := New(refresher, Options{Interval: 50 * time.Millisecond}, newTestLogger(t))

	refresher.EXPECT().RefreshStatuses(mock.Anything).Return(2, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(refresher.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	refresher := mocks.NewMockStatusRefresher(t)

	s := New(refresher, Options{Interval: 50 * time.Millisecond}, newTestLogger(t))

	refresher.EXPECT().RefreshStatuses(mock.Anything).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(refresher.Calls), 1)
}

func TestScheduler_RefreshOnStart(t *testing.T) {
	refresher := mocks.NewMockStatusRefresher(t)

	called := make(chan struct{})
	refresher.EXPECT().RefreshStatuses(mock.Anything).
		Run(func(context.Context) { close(called) }).
		Return(1, nil).Once()

	s := New(refresher, Options{Interval: time.Hour, RefreshOnStart: true}, newTestLogger(t))
	stop := runAsync(t, s)

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("refresh was not run on start")
	}
	stop()
}

func TestScheduler_TickHasDeadline(t *testing.T) {
	refresher := mocks.NewMockStatusRefresher(t)

	deadlines := make(chan time.Duration, 1)
	refresher.EXPECT().RefreshStatuses(mock.Anything).
		Run(func(ctx context.Context) {
			dl, ok := ctx.Deadline()
			if !ok {
				deadlines <- 0
				return
			}
			deadlines <- time.Until(dl)
		}).
		Return(0, nil).Once()

	s := New(refresher, Options{
		Interval:       time.Hour,
		Timeout:        200 * time.Millisecond,
		RefreshOnStart: true,
	}, newTestLogger(t))
	stop := runAsync(t, s)
	defer stop()

	select {
	case left := <-deadlines:
		require.Greater(t, left, time.Duration(0))
		assert.LessOrEqual(t, left, 200*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("refresh was not run")
	}
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	refresher := mocks.NewMockStatusRefresher(t)

	s := New(refresher, Options{Interval: time.Second}, newTestLogger(t))
	runAsync(t, s)()

	assert.Empty(t, refresher.Calls)
}

func TestScheduler_MultipleTicks(t *testing.T) {
	refresher := mocks.NewMockStatusRefresher(t)

	s := New(refresher, Options{Interval: 30 * time.Millisecond}, newTestLogger(t))

	refresher.EXPECT().RefreshStatuses(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(refresher.Calls), 2)
}

func TestNew_TimeoutDefaultsToInterval(t *testing.T) {
	s := New(nil, Options{Interval: 5 * time.Second}, newTestLogger(t))
	assert.Equal(t, 5*time.Second, s.opts.Timeout)
}
