// Package domain contains the core data types for the plann.er API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler, mail).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level planning aggregate. Activities, participants, and
// links all belong to exactly one trip and are removed with it.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Contains reports whether ts falls within the trip's date range, inclusive
// on both ends. A trip from March 10 to March 15 contains both boundary days.
func (t Trip) Contains(ts time.Time) bool {
	return !ts.Before(t.StartsAt) && !ts.After(t.EndsAt)
}
