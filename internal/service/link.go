package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mcamargo/planner/internal/domain"
	"github.com/mcamargo/planner/internal/repo"
)

// LinkService implements business logic for Link operations.
// Links have no cross-field rules beyond belonging to an existing trip;
// the URL is stored as given, with no format check anywhere.
type LinkService struct {
	trips repo.TripRepo
	links repo.LinkRepo
}

// NewLinkService constructs a LinkService backed by the provided repos.
func NewLinkService(trips repo.TripRepo, links repo.LinkRepo) *LinkService {
	return &LinkService{trips: trips, links: links}
}

// Create persists a new link on the trip.
// Returns domain.ErrNotFound if the trip does not exist and
// domain.ErrValidation if the title is blank.
func (s *LinkService) Create(ctx context.Context, link domain.Link) (domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, link.TripID); err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	if strings.TrimSpace(link.Title) == "" {
		return domain.Link{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	created, err := s.links.Create(ctx, link)
	if err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	return created, nil
}

// ListByTrip returns all links of a trip in insertion order.
// Returns domain.ErrNotFound if the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *LinkService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTrip: %w", err)
	}

	links, err := s.links.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTrip: %w", err)
	}
	if links == nil {
		return []domain.Link{}, nil
	}
	return links, nil
}
