package handler

import (
	"net/http"
	"time"

	"github.com/mcamargo/planner/internal/domain"
)

type createActivityRequest struct {
	Title    string    `json:"title" validate:"required"`
	OccursAt time.Time `json:"occurs_at" validate:"required"`
}

type activityResponse struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

// activityGroupResponse is one calendar day of the itinerary. Date carries
// only the day; activities on that day are ordered by occurs_at.
type activityGroupResponse struct {
	Date       string             `json:"date"`
	Activities []activityResponse `json:"activities"`
}

// CreateActivity handles POST /trips/{tripID}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := urlParamUUID(r, "tripID")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	var req createActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	activity, err := s.activities.Create(r.Context(), domain.Activity{
		TripID:   tripID,
		Title:    req.Title,
		OccursAt: req.OccursAt,
	})
	if err != nil {
		respondError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"activityId": activity.ID.String()})
}

// ListActivities handles GET /trips/{tripID}/activities.
// The response holds one group per day of the trip, empty days included.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, err := urlParamUUID(r, "tripID")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	groups, err := s.activities.ListByTrip(r.Context(), tripID)
	if err != nil {
		respondError(w, r, err, "trip")
		return
	}

	out := make([]activityGroupResponse, len(groups))
	for i, g := range groups {
		acts := make([]activityResponse, len(g.Activities))
		for j, a := range g.Activities {
			acts[j] = activityResponse{
				ID:       a.ID.String(),
				Title:    a.Title,
				OccursAt: a.OccursAt,
			}
		}
		out[i] = activityGroupResponse{
			Date:       g.Date.Format("2006-01-02"),
			Activities: acts,
		}
	}
	writeJSON(w, http.StatusOK, map[string][]activityGroupResponse{"activities": out})
}
