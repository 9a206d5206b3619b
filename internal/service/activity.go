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

// ActivityService implements business logic for Activity operations.
// It holds the trip repo because an activity must fall inside its parent
// trip's date range.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create validates the activity against the parent trip's date range and
// persists it. The range is inclusive on both ends: an activity on the
// trip's first or last day is valid.
// Returns domain.ErrNotFound if the trip does not exist and
// domain.ErrValidation if the title is blank or the date falls outside the
// trip range.
func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, activity.TripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	if strings.TrimSpace(activity.Title) == "" {
		return domain.Activity{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !trip.Contains(activity.OccursAt) {
		return domain.Activity{}, fmt.Errorf("%w: activity outside trip range", domain.ErrValidation)
	}

	created, err := s.activities.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return created, nil
}

// ListByTrip returns the trip's activities grouped by calendar day.
// One group is returned for every day of the trip range, first to last day
// inclusive, even when no activity falls on that day — clients render the
// full itinerary from this. Activities within a day are ordered by occurs_at.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ActivityService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.ActivityGroup, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTrip: %w", err)
	}

	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTrip: %w", err)
	}

	return groupByDay(trip, activities), nil
}

// groupByDay buckets activities into one group per calendar day of the trip.
// Days are compared in UTC. TripService.Update rejects date ranges that would
// strand activities, so every stored activity lands in a bucket.
func groupByDay(trip domain.Trip, activities []domain.Activity) []domain.ActivityGroup {
	first := dayOf(trip.StartsAt)
	last := dayOf(trip.EndsAt)

	var groups []domain.ActivityGroup
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		group := domain.ActivityGroup{Date: day, Activities: []domain.Activity{}}
		for _, a := range activities {
			if dayOf(a.OccursAt).Equal(day) {
				group.Activities = append(group.Activities, a)
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// dayOf truncates a timestamp to midnight UTC of its calendar day.
func dayOf(ts time.Time) time.Time {
	y, m, d := ts.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
