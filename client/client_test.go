package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourdesk/dehydrate"
	"tourdesk/form"
	"tourdesk/models"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(Config{BaseURL: srv.URL, UserID: "u1", RPS: 1000}, nil)
	require.NoError(t, err)
	return c, srv
}

func payloadFor(t *testing.T, cur form.TourForm) dehydrate.Payload {
	t.Helper()
	p, err := dehydrate.FullPayload(cur)
	require.NoError(t, err)
	return p
}

func TestCreateRoutesToPost(t *testing.T) {
	var gotMethod, gotPath, gotTitle string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		require.NoError(t, r.ParseMultipartForm(10<<20))
		gotTitle = r.FormValue("title")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Tour{TourID: "t-new", Title: gotTitle})
	}))

	tour, err := c.CreateTour(context.Background(), payloadFor(t, form.TourForm{Title: "New Tour"}))
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/tours", gotPath)
	assert.Equal(t, "New Tour", gotTitle)
	assert.Equal(t, "t-new", tour.TourID)
}

func TestUpdateRoutesToPatchWithIdentifier(t *testing.T) {
	var gotMethod, gotPath, gotID string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		require.NoError(t, r.ParseMultipartForm(10<<20))
		gotID = r.FormValue("tourid")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Tour{TourID: gotID})
	}))

	orig := form.TourForm{TourID: "t9", Title: "Same"}
	cur := orig // nothing changed
	p, err := dehydrate.Build(orig, cur)
	require.NoError(t, err)

	_, err = c.UpdateTour(context.Background(), "t9", p)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/tours/t9", gotPath)
	assert.Equal(t, "t9", gotID, "identifier sent even when nothing changed")
}

func TestErrorMessageExtraction(t *testing.T) {
	t.Run("structured message", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"message": "tour code already in use"})
		}))
		_, err := c.GetTour(context.Background(), "t1")
		require.Error(t, err)
		var apiError *APIError
		require.ErrorAs(t, err, &apiError)
		assert.Equal(t, "tour code already in use", apiError.Message)
		assert.Equal(t, http.StatusConflict, apiError.StatusCode)
	})

	t.Run("falls back to status text", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		_, err := c.GetTour(context.Background(), "t1")
		var apiError *APIError
		require.ErrorAs(t, err, &apiError)
		assert.Equal(t, http.StatusBadGateway, apiError.StatusCode)
		assert.NotEmpty(t, apiError.Message)
	})
}

func TestExpiredTokenFailsFast(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "u1",
		"exp":    time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte("whatever"))
	require.NoError(t, err)

	_, err = New(Config{BaseURL: "http://localhost:1", Token: signed}, nil)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestContextCancellation(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.GetTour(ctx, "t1")
	assert.Error(t, err)
}

func TestCatalogFetches(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/facts/user/u1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.FactDefinition{{ID: "f1", Title: "Difficulty"}})
	})
	mux.HandleFunc("/api/faqs/user/u1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.FAQDefinition{{ID: "q1", Question: "Visa?"}})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	c, _ := newTestClient(t, mux)

	cat := c.LoadCatalogs(context.Background(), "u1")
	require.Len(t, cat.Facts, 1)
	assert.Equal(t, "Difficulty", cat.Facts[0].Title)
	require.Len(t, cat.FAQs, 1)
	assert.Empty(t, cat.Categories, "failed catalog fetch is non-fatal")
}
