package handler

import (
	"net/http"

	"github.com/mcamargo/planner/internal/domain"
)

// createLinkRequest carries a new reference URL. The URL format is not
// validated server-side; clients send whatever they consider a link.
type createLinkRequest struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required"`
}

type linkResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CreateLink handles POST /trips/{tripID}/links.
func (s *Server) CreateLink(w http.ResponseWriter, r *http.Request) {
	tripID, err := urlParamUUID(r, "tripID")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	var req createLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	link, err := s.links.Create(r.Context(), domain.Link{
		TripID: tripID,
		Title:  req.Title,
		URL:    req.URL,
	})
	if err != nil {
		respondError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"linkId": link.ID.String()})
}

// ListLinks handles GET /trips/{tripID}/links.
func (s *Server) ListLinks(w http.ResponseWriter, r *http.Request) {
	tripID, err := urlParamUUID(r, "tripID")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	links, err := s.links.ListByTrip(r.Context(), tripID)
	if err != nil {
		respondError(w, r, err, "trip")
		return
	}

	out := make([]linkResponse, len(links))
	for i, l := range links {
		out[i] = linkResponse{ID: l.ID.String(), Title: l.Title, URL: l.URL}
	}
	writeJSON(w, http.StatusOK, map[string][]linkResponse{"links": out})
}
