package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mcamargo/planner/internal/domain"
	"github.com/mcamargo/planner/internal/repo"
)

// ParticipantService implements business logic for Participant operations.
// It holds the trip repo because inviting and listing require the parent
// trip to exist, and the invite email embeds the trip's destination and dates.
type ParticipantService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	notifier     Notifier
}

// NewParticipantService constructs a ParticipantService backed by the
// provided repos and notifier.
func NewParticipantService(trips repo.TripRepo, participants repo.ParticipantRepo, notifier Notifier) *ParticipantService {
	return &ParticipantService{trips: trips, participants: participants, notifier: notifier}
}

// Invite creates an unconfirmed participant on the trip and hands the invite
// email to the notifier. The email carries a confirmation link embedding the
// new participant's id; delivery is fire-and-forget, so the participant is
// returned even if the email later fails.
// Returns domain.ErrNotFound if the trip does not exist.
// Inviting the same email twice creates two participants — each invite is
// its own row.
func (s *ParticipantService) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	participant, err := s.participants.Create(ctx, domain.Participant{
		TripID: tripID,
		Email:  email,
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	s.notifier.PresenceRequested(trip, participant)

	return participant, nil
}

// Confirm flips the participant to confirmed, overwriting the stored name and
// email with the provided values. Empty values keep what is stored — the
// confirmation link works without query parameters. Re-confirming with a new
// name or email overwrites silently; there is no conflict check.
// Returns domain.ErrNotFound if the participant does not exist.
func (s *ParticipantService) Confirm(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, error) {
	existing, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}

	if name == "" {
		name = existing.Name
	}
	if email == "" {
		email = existing.Email
	}

	confirmed, err := s.participants.Confirm(ctx, id, name, email)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}
	return confirmed, nil
}

// GetByID returns a single participant by ID.
// Returns domain.ErrNotFound if no participant with that ID exists.
func (s *ParticipantService) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	participant, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.GetByID: %w", err)
	}
	return participant, nil
}

// ListByTrip returns all participants of a trip in creation order.
// Returns domain.ErrNotFound if the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ParticipantService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTrip: %w", err)
	}

	participants, err := s.participants.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTrip: %w", err)
	}
	if participants == nil {
		return []domain.Participant{}, nil
	}
	return participants, nil
}
