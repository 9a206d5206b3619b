package handler

import (
	"net/http"
	"time"

	"github.com/mcamargo/planner/internal/domain"
	"github.com/mcamargo/planner/internal/service"
)

// createTripRequest bundles the trip fields with the owner identity and the
// initial invite list, so one request creates the whole party.
type createTripRequest struct {
	Destination    string    `json:"destination" validate:"required"`
	StartsAt       time.Time `json:"starts_at" validate:"required"`
	EndsAt         time.Time `json:"ends_at" validate:"required"`
	OwnerName      string    `json:"owner_name" validate:"required"`
	OwnerEmail     string    `json:"owner_email" validate:"required,email"`
	EmailsToInvite []string  `json:"emails_to_invite" validate:"omitempty,dive,email"`
}

type updateTripRequest struct {
	Destination string    `json:"destination" validate:"required"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required"`
}

// tripResponse is the public shape of a trip. Bookkeeping timestamps are
// not part of the API surface.
type tripResponse struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
}

func toTripResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID.String(),
		Destination: t.Destination,
		StartsAt:    t.StartsAt,
		EndsAt:      t.EndsAt,
		IsConfirmed: t.IsConfirmed,
	}
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	trip, err := s.trips.Create(r.Context(), service.CreateTripParams{
		Destination:    req.Destination,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		OwnerName:      req.OwnerName,
		OwnerEmail:     req.OwnerEmail,
		EmailsToInvite: req.EmailsToInvite,
	})
	if err != nil {
		respondError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"tripId": trip.ID.String()})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamUUID(r, "tripID")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, map[string]tripResponse{"trip": toTripResponse(trip)})
}

// UpdateTrip handles PUT /trips/{tripID}.
// The three mutable fields are overwritten as a whole; the service rejects a
// new range that would strand existing activities.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamUUID(r, "tripID")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	var req updateTripRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	updated, err := s.trips.Update(r.Context(), domain.Trip{
		ID:          id,
		Destination: req.Destination,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	})
	if err != nil {
		respondError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, map[string]tripResponse{"trip": toTripResponse(updated)})
}

// ConfirmTrip handles GET /trips/{tripID}/confirm.
// This is the endpoint behind the link in the owner's email: it confirms the
// trip, kicks off the participant invites, and drops the user on the trip
// page of the web app. Re-visiting the link is a harmless no-op.
func (s *Server) ConfirmTrip(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamUUID(r, "tripID")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	trip, err := s.trips.Confirm(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "trip")
		return
	}

	http.Redirect(w, r, s.webBaseURL+"/trips/"+trip.ID.String(), http.StatusFound)
}
