package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a dated event scoped to its trip's date range.
// The range check happens when the activity is created; see TripService.Update
// for what happens when the trip's dates change afterwards.
type Activity struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Title     string    `json:"title"`
	OccursAt  time.Time `json:"occurs_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityGroup holds all activities of one calendar day of a trip.
// The activities listing returns one group per day of the trip range,
// including days with no activities, so clients can render a full itinerary.
type ActivityGroup struct {
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}
