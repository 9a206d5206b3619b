package handler

import (
	"net/http"

	"github.com/mcamargo/planner/internal/domain"
)

type createInviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// participantResponse is the public shape of a participant. is_owner stays
// internal — listings expose only what other invitees may see.
type participantResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsConfirmed bool   `json:"is_confirmed"`
}

func toParticipantResponse(p domain.Participant) participantResponse {
	return participantResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Email:       p.Email,
		IsConfirmed: p.IsConfirmed,
	}
}

// CreateInvite handles POST /trips/{tripID}/invites.
// The confirmation email is dispatched asynchronously: a 201 here means the
// participant exists, not that the email went out.
func (s *Server) CreateInvite(w http.ResponseWriter, r *http.Request) {
	tripID, err := urlParamUUID(r, "tripID")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	var req createInviteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	participant, err := s.participants.Invite(r.Context(), tripID, req.Email)
	if err != nil {
		respondError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"participantId": participant.ID.String()})
}

// ConfirmParticipant handles GET /participants/{participantID}/confirm.
// The web confirmation page appends name and email as query parameters;
// either may be absent, in which case the stored values are kept.
// After confirming, the user is redirected to the trip page.
func (s *Server) ConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamUUID(r, "participantID")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	name := r.URL.Query().Get("name")
	email := r.URL.Query().Get("email")
	if email != "" {
		if err := validate.Var(email, "email"); err != nil {
			respondBadRequest(w, "invalid email address")
			return
		}
	}

	participant, err := s.participants.Confirm(r.Context(), id, name, email)
	if err != nil {
		respondError(w, r, err, "participant")
		return
	}

	http.Redirect(w, r, s.webBaseURL+"/trips/"+participant.TripID.String(), http.StatusFound)
}

// GetParticipant handles GET /participants/{participantID}.
// The web confirmation page uses this to prefill the invitee's email.
func (s *Server) GetParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamUUID(r, "participantID")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	participant, err := s.participants.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "participant")
		return
	}

	writeJSON(w, http.StatusOK, map[string]participantResponse{
		"participant": toParticipantResponse(participant),
	})
}

// ListParticipants handles GET /trips/{tripID}/participants.
func (s *Server) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, err := urlParamUUID(r, "tripID")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	participants, err := s.participants.ListByTrip(r.Context(), tripID)
	if err != nil {
		respondError(w, r, err, "trip")
		return
	}

	out := make([]participantResponse, len(participants))
	for i, p := range participants {
		out[i] = toParticipantResponse(p)
	}
	writeJSON(w, http.StatusOK, map[string][]participantResponse{"participants": out})
}
