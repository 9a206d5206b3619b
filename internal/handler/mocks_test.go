package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mcamargo/planner/internal/domain"
	"github.com/mcamargo/planner/internal/handler"
	"github.com/mcamargo/planner/internal/service"
)

// testWebBaseURL is the redirect target used by every handler test.
const testWebBaseURL = "http://web.test"

// Hand-written test doubles for the servicer interfaces.
// Set only the method fields your test needs.

type mockTripServicer struct {
	create  func(ctx context.Context, params service.CreateTripParams) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	confirm func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
}

func (m *mockTripServicer) Create(ctx context.Context, params service.CreateTripParams) (domain.Trip, error) {
	return m.create(ctx, params)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripServicer) Confirm(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.confirm(ctx, id)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockParticipantServicer struct {
	invite     func(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error)
	confirm    func(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

func (m *mockParticipantServicer) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	return m.invite(ctx, tripID, email)
}
func (m *mockParticipantServicer) Confirm(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, error) {
	return m.confirm(ctx, id, name, email)
}
func (m *mockParticipantServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.getByID(ctx, id)
}
func (m *mockParticipantServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTrip(ctx, tripID)
}

var _ handler.ParticipantServicer = (*mockParticipantServicer)(nil)

type mockActivityServicer struct {
	create     func(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.ActivityGroup, error)
}

func (m *mockActivityServicer) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	return m.create(ctx, activity)
}
func (m *mockActivityServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.ActivityGroup, error) {
	return m.listByTrip(ctx, tripID)
}

var _ handler.ActivityServicer = (*mockActivityServicer)(nil)

type mockLinkServicer struct {
	create     func(ctx context.Context, link domain.Link) (domain.Link, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

func (m *mockLinkServicer) Create(ctx context.Context, link domain.Link) (domain.Link, error) {
	return m.create(ctx, link)
}
func (m *mockLinkServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	return m.listByTrip(ctx, tripID)
}

var _ handler.LinkServicer = (*mockLinkServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// deps bundles the four servicers so tests only fill in what they use.
type deps struct {
	trips        handler.TripServicer
	participants handler.ParticipantServicer
	activities   handler.ActivityServicer
	links        handler.LinkServicer
}

// newTestRouter wires a Server with the given mocks into its chi router,
// mirroring how main.go wires it in production.
func newTestRouter(d deps) http.Handler {
	return handler.NewServer(d.trips, d.participants, d.activities, d.links, testWebBaseURL).Routes()
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          uuid.New(),
		Destination: "Florianópolis",
		StartsAt:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
