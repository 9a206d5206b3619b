package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcamargo/planner/internal/domain"
)

// ---- POST /trips/{tripID}/links ----------------------------------------------

func TestCreateLink_201(t *testing.T) {
	tripID := uuid.New()
	linkID := uuid.New()
	links := &mockLinkServicer{
		create: func(_ context.Context, l domain.Link) (domain.Link, error) {
			require.Equal(t, tripID, l.TripID)
			require.Equal(t, "Airbnb reservation", l.Title)
			require.Equal(t, "https://airbnb.com/rooms/123", l.URL)
			l.ID = linkID
			return l, nil
		},
	}

	body := jsonBody(t, map[string]string{
		"title": "Airbnb reservation",
		"url":   "https://airbnb.com/rooms/123",
	})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/links", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestRouter(deps{links: links}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, linkID.String(), resp["linkId"])
}

func TestCreateLink_201_AnyURLShape(t *testing.T) {
	// The server does not judge URL formats.
	links := &mockLinkServicer{
		create: func(_ context.Context, l domain.Link) (domain.Link, error) {
			l.ID = uuid.New()
			return l, nil
		},
	}

	body := jsonBody(t, map[string]string{
		"title": "Notes",
		"url":   "not really a url",
	})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/links", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestRouter(deps{links: links}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateLink_400_MissingURL(t *testing.T) {
	body := jsonBody(t, map[string]string{"title": "Airbnb reservation"})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/links", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestRouter(deps{links: &mockLinkServicer{}}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateLink_404_TripMissing(t *testing.T) {
	links := &mockLinkServicer{
		create: func(_ context.Context, _ domain.Link) (domain.Link, error) {
			return domain.Link{}, domain.ErrNotFound
		},
	}

	body := jsonBody(t, map[string]string{
		"title": "Airbnb reservation",
		"url":   "https://airbnb.com/rooms/123",
	})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/links", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestRouter(deps{links: links}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /trips/{tripID}/links -----------------------------------------------

func TestListLinks_200(t *testing.T) {
	tripID := uuid.New()
	links := &mockLinkServicer{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Link, error) {
			return []domain.Link{
				{ID: uuid.New(), Title: "Airbnb reservation", URL: "https://airbnb.com/rooms/123"},
				{ID: uuid.New(), Title: "Flight tickets", URL: "https://airline.example/booking"},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+tripID.String()+"/links", nil)
	rec := httptest.NewRecorder()

	newTestRouter(deps{links: links}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Links []struct {
			Title string `json:"title"`
			URL   string `json:"url"`
		} `json:"links"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Links, 2)
	assert.Equal(t, "Airbnb reservation", resp.Links[0].Title)
}

func TestListLinks_404_TripMissing(t *testing.T) {
	links := &mockLinkServicer{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Link, error) {
			return nil, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString()+"/links", nil)
	rec := httptest.NewRecorder()

	newTestRouter(deps{links: links}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
