package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is an invitee or owner of a trip.
// Name is empty until the participant confirms; the invite flow only knows
// the email address. Duplicate emails within one trip are allowed — inviting
// the same address twice creates two rows.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
	IsOwner     bool      `json:"is_owner"`
	CreatedAt   time.Time `json:"created_at"`
}
