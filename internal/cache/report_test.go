package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_EmptyAddrDisablesCache(t *testing.T) {
	client, err := NewClient(context.Background(), "", "", 0)

	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestReportCache_RoundTrip(t *testing.T) {
	addr := os.Getenv("EVENTHUB_TEST_REDIS")
	if addr == "" {
		t.Skip("EVENTHUB_TEST_REDIS is not set")
	}

	ctx := context.Background()
	client, err := NewClient(ctx, addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	c := NewReportCache(client, time.Minute)
	require.NoError(t, c.Invalidate(ctx))

	_, ok, err := c.GetOverview(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	overview := &domain.Overview{
		TotalEvents:    2,
		EventsByStatus: []domain.StatusCount{{Status: "UPCOMING", Count: 2}},
		PopularEvents:  []domain.PopularEvent{{EventID: "e1", Title: "Go Meetup", Registrations: 4}},
		RecentEvents:   []*domain.Event{},
	}
	require.NoError(t, c.SetOverview(ctx, overview))

	got, ok, err := c.GetOverview(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, got.TotalEvents)
	assert.Equal(t, overview.PopularEvents, got.PopularEvents)

	ttl, err := client.TTL(ctx, overviewKey).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, c.Invalidate(ctx))
	_, ok, err = c.GetOverview(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
