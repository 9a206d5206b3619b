// Package service contains the business logic for the plann.er API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mcamargo/planner/internal/domain"
	"github.com/mcamargo/planner/internal/repo"
)

// Notifier hands confirmation emails off to an asynchronous dispatcher.
// Implementations must not block and must never surface delivery failures to
// the caller; the request has already succeeded by the time these run.
// mail.Dispatcher is the production implementation.
type Notifier interface {
	TripCreated(trip domain.Trip, owner domain.Participant)
	PresenceRequested(trip domain.Trip, participant domain.Participant)
}

// CreateTripParams carries everything needed to create a trip together with
// its initial participants.
type CreateTripParams struct {
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	OwnerName      string
	OwnerEmail     string
	EmailsToInvite []string
}

// TripService implements business logic for Trip operations.
// It holds the activity repo as well because updating a trip's date range
// must re-check existing activities, and the participant repo because
// confirming a trip notifies pending participants.
type TripService struct {
	trips        repo.TripRepo
	activities   repo.ActivityRepo
	participants repo.ParticipantRepo
	notifier     Notifier

	// allowPastTrips disables the starts-in-the-past rejection on creation.
	allowPastTrips bool

	// now is swappable in tests.
	now func() time.Time
}

// NewTripService constructs a TripService. allowPastTrips controls whether
// trips may start before the current time.
func NewTripService(trips repo.TripRepo, activities repo.ActivityRepo, participants repo.ParticipantRepo, notifier Notifier, allowPastTrips bool) *TripService {
	return &TripService{
		trips:          trips,
		activities:     activities,
		participants:   participants,
		notifier:       notifier,
		allowPastTrips: allowPastTrips,
		now:            time.Now,
	}
}

// Create validates and persists a new trip together with its owner and one
// unconfirmed participant per invited email, all in one transaction. The
// owner is created pre-confirmed. On success a confirmation-kickoff email is
// handed to the notifier; delivery is fire-and-forget.
func (s *TripService) Create(ctx context.Context, params CreateTripParams) (domain.Trip, error) {
	if err := validateTripDates(params.Destination, params.StartsAt, params.EndsAt); err != nil {
		return domain.Trip{}, err
	}
	if !s.allowPastTrips && params.StartsAt.Before(s.now()) {
		return domain.Trip{}, fmt.Errorf("%w: starts_at must not be in the past", domain.ErrValidation)
	}

	trip := domain.Trip{
		Destination: params.Destination,
		StartsAt:    params.StartsAt,
		EndsAt:      params.EndsAt,
	}

	participants := make([]domain.Participant, 0, len(params.EmailsToInvite)+1)
	participants = append(participants, domain.Participant{
		Name:        params.OwnerName,
		Email:       params.OwnerEmail,
		IsOwner:     true,
		IsConfirmed: true,
	})
	for _, email := range params.EmailsToInvite {
		participants = append(participants, domain.Participant{Email: email})
	}

	created, inserted, err := s.trips.CreateWithParticipants(ctx, trip, participants)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	// inserted[0] is the owner; the order of the input slice is preserved.
	s.notifier.TripCreated(created, inserted[0])

	return created, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// Update overwrites destination, starts_at, and ends_at of an existing trip.
// The past-date policy does not apply to updates, but the new range must
// still contain every existing activity — narrowing a trip under its
// activities is rejected with domain.ErrValidation.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if _, err := s.trips.GetByID(ctx, trip.ID); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	if err := validateTripDates(trip.Destination, trip.StartsAt, trip.EndsAt); err != nil {
		return domain.Trip{}, err
	}

	activities, err := s.activities.ListByTripID(ctx, trip.ID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	for _, a := range activities {
		if !trip.Contains(a.OccursAt) {
			return domain.Trip{}, fmt.Errorf("%w: new date range excludes activity %q", domain.ErrValidation, a.Title)
		}
	}

	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Confirm marks a trip as confirmed and requests presence confirmation from
// every participant that is neither confirmed nor the owner. Confirming an
// already-confirmed trip is a no-op success — no state change, no emails.
func (s *TripService) Confirm(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	if trip.IsConfirmed {
		return trip, nil
	}

	if err := s.trips.SetConfirmed(ctx, id); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	trip.IsConfirmed = true

	participants, err := s.participants.ListByTripID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	for _, p := range participants {
		if p.IsConfirmed || p.IsOwner {
			continue
		}
		s.notifier.PresenceRequested(trip, p)
	}

	return trip, nil
}

// validateTripDates enforces the rules shared by Create and Update.
//   - Destination must be non-empty (whitespace-only is rejected).
//   - EndsAt must not be before StartsAt. Equal timestamps are allowed — a
//     one-day trip is valid.
func validateTripDates(destination string, startsAt, endsAt time.Time) error {
	if strings.TrimSpace(destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if endsAt.Before(startsAt) {
		return fmt.Errorf("%w: ends_at must not be before starts_at", domain.ErrValidation)
	}
	return nil
}
