package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mcamargo/planner/internal/domain"
	"github.com/mcamargo/planner/internal/repo"
	"github.com/mcamargo/planner/internal/service"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field — set only the ones your test needs.
// This is idiomatic Go: no mock generation library required for simple cases.

type mockTripRepo struct {
	createWithParticipants func(ctx context.Context, trip domain.Trip, participants []domain.Participant) (domain.Trip, []domain.Participant, error)
	getByID                func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update                 func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	setConfirmed           func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) CreateWithParticipants(ctx context.Context, trip domain.Trip, participants []domain.Participant) (domain.Trip, []domain.Participant, error) {
	return m.createWithParticipants(ctx, trip, participants)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) SetConfirmed(ctx context.Context, id uuid.UUID) error {
	return m.setConfirmed(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockParticipantRepo struct {
	create       func(ctx context.Context, p domain.Participant) (domain.Participant, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	confirm      func(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, error)
}

func (m *mockParticipantRepo) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	return m.create(ctx, p)
}
func (m *mockParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.getByID(ctx, id)
}
func (m *mockParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockParticipantRepo) Confirm(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, error) {
	return m.confirm(ctx, id, name, email)
}

var _ repo.ParticipantRepo = (*mockParticipantRepo)(nil)

type mockActivityRepo struct {
	create       func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}

var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

type mockLinkRepo struct {
	create       func(ctx context.Context, l domain.Link) (domain.Link, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

func (m *mockLinkRepo) Create(ctx context.Context, l domain.Link) (domain.Link, error) {
	return m.create(ctx, l)
}
func (m *mockLinkRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	return m.listByTripID(ctx, tripID)
}

var _ repo.LinkRepo = (*mockLinkRepo)(nil)

// recordingNotifier records every notification handed to it.
// Safe for concurrent use, though services call it synchronously.
type recordingNotifier struct {
	mu            sync.Mutex
	tripCreated   []domain.Participant
	presenceAsked []domain.Participant
	tripsNotified []domain.Trip
}

func (n *recordingNotifier) TripCreated(trip domain.Trip, owner domain.Participant) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.tripCreated = append(n.tripCreated, owner)
	n.tripsNotified = append(n.tripsNotified, trip)
}

func (n *recordingNotifier) PresenceRequested(trip domain.Trip, participant domain.Participant) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.presenceAsked = append(n.presenceAsked, participant)
	n.tripsNotified = append(n.tripsNotified, trip)
}

var _ service.Notifier = (*recordingNotifier)(nil)

// ---- fixtures --------------------------------------------------------------

// validTrip returns a trip safely in the future with a five-day range.
func validTrip() domain.Trip {
	now := time.Now().UTC()
	return domain.Trip{
		ID:          uuid.New(),
		Destination: "Florianópolis",
		StartsAt:    now.AddDate(0, 1, 0),
		EndsAt:      now.AddDate(0, 1, 5),
	}
}

// tripFound returns a mockTripRepo whose GetByID always returns trip.
func tripFound(trip domain.Trip) *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
	}
}

// tripMissing returns a mockTripRepo whose GetByID always reports not found.
func tripMissing() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
}
