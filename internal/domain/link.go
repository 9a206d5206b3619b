package domain

import (
	"time"

	"github.com/google/uuid"
)

// Link is an arbitrary reference URL attached to a trip (booking
// confirmations, Airbnb pages, shared documents).
type Link struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
