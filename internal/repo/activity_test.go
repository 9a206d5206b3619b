package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcamargo/planner/internal/domain"
	"github.com/mcamargo/planner/internal/repo"
)

func TestActivityRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewActivityRepo(tx)
	ctx := context.Background()

	trip := createTestTrip(t, tx)

	got, err := r.Create(ctx, domain.Activity{
		TripID:   trip.ID,
		Title:    "Beach day",
		OccursAt: trip.StartsAt.Add(36 * time.Hour),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, "Beach day", got.Title)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestActivityRepo_ListByTripID_OrderedByOccursAt(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewActivityRepo(tx)
	ctx := context.Background()

	trip := createTestTrip(t, tx)

	// Insert out of chronological order; the listing must sort by occurs_at.
	for _, a := range []struct {
		title string
		hours time.Duration
	}{
		{"Sunset hike", 60 * time.Hour},
		{"Check in", 12 * time.Hour},
		{"Beach day", 36 * time.Hour},
	} {
		_, err := r.Create(ctx, domain.Activity{
			TripID:   trip.ID,
			Title:    a.title,
			OccursAt: trip.StartsAt.Add(a.hours),
		})
		require.NoError(t, err)
	}

	got, err := r.ListByTripID(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Check in", got[0].Title)
	assert.Equal(t, "Beach day", got[1].Title)
	assert.Equal(t, "Sunset hike", got[2].Title)
}

func TestActivityRepo_ListByTripID_Empty(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewActivityRepo(tx)

	trip := createTestTrip(t, tx)

	got, err := r.ListByTripID(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.Empty(t, got)
}
