package stubapi_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"tourdesk/client"
	"tourdesk/dehydrate"
	"tourdesk/form"
	"tourdesk/hydrate"
	"tourdesk/models"
	"tourdesk/ratelim"
	"tourdesk/stubapi"
)

var testSecret = []byte("test-secret")

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := stubapi.NewStore()
	store.Seed()

	router := httprouter.New()
	stubapi.AddRoutes(router, stubapi.NewHandlers(store), testSecret, ratelim.NewRateLimiter(100, 100))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server) (token, userID string) {
	t.Helper()
	anon, err := client.New(client.Config{BaseURL: srv.URL}, nil)
	require.NoError(t, err)

	token, userID, err = anon.Login(context.Background(), "demo@tourdesk.local", "tourdesk")
	require.NoError(t, err)
	require.Equal(t, "u-demo", userID)
	return token, userID
}

func newClient(t *testing.T, srv *httptest.Server) *client.Client {
	t.Helper()
	token, userID := login(t, srv)
	c, err := client.New(client.Config{
		BaseURL: srv.URL,
		Token:   token,
		UserID:  userID,
		RPS:     100,
	}, nil)
	require.NoError(t, err)
	return c
}

func TestFullLifecycle(t *testing.T) {
	srv := newServer(t)
	c := newClient(t, srv)
	ctx := context.Background()

	// create from a full payload
	f := form.TourForm{
		Title:      "Serengeti Safari",
		Excerpt:    "Five days in the northern circuit.",
		TourStatus: "draft",
		Category:   []models.Category{{ID: "c2", Name: "Safari", IsActive: true}},
		Pricing:    form.PricingForm{Price: 2100, PerPerson: true, MinPax: 2, MaxPax: 8},
		Itinerary: []models.ItineraryDay{
			{Day: "Day 1", Title: "Arusha to Seronera"},
		},
		Facts: []form.FactForm{
			{Title: "Tour Availability", FieldType: models.FactMultiSelect,
				Value: models.SelectValue(models.Option{Label: "June", Value: "june"})},
		},
	}
	payload, err := dehydrate.FullPayload(f)
	require.NoError(t, err)

	created, err := c.CreateTour(ctx, payload)
	require.NoError(t, err)
	require.NotEmpty(t, created.TourID)
	require.Equal(t, "Serengeti Safari", created.Title)
	require.Equal(t, models.PaxRange{2, 8}, created.Pricing.PaxRange)

	// hydrate the stored record back into form shape
	fetched, err := c.GetTour(ctx, created.TourID)
	require.NoError(t, err)
	catalogs := c.LoadCatalogs(ctx, "u-demo")
	require.NotEmpty(t, catalogs.Facts)

	orig := hydrate.Snapshot(fetched, catalogs)
	require.Equal(t, f.Title, orig.Title)
	require.Equal(t, 2100.0, orig.Pricing.Price)
	require.Equal(t, "f1", orig.Facts[0].CatalogID, "fact relinks to the seeded catalog entry")

	// sparse update: change one scalar, leave everything else alone
	cur := orig
	cur.Excerpt = "Six days in the northern circuit."
	sparse, err := dehydrate.Build(orig, cur)
	require.NoError(t, err)
	require.Equal(t, 2, sparse.Len(), "tourid plus the one changed section")

	updated, err := c.UpdateTour(ctx, created.TourID, sparse)
	require.NoError(t, err)
	require.Equal(t, "Six days in the northern circuit.", updated.Excerpt)
	require.Equal(t, "Serengeti Safari", updated.Title, "untouched fields survive a sparse patch")
	require.Equal(t, models.PaxRange{2, 8}, updated.Pricing.PaxRange)

	// list shows the tour; delete removes it
	tours, err := c.ListTours(ctx)
	require.NoError(t, err)
	require.Len(t, tours, 1)

	require.NoError(t, c.DeleteTour(ctx, created.TourID))
	_, err = c.GetTour(ctx, created.TourID)
	require.Error(t, err)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.StatusCode)
	require.Equal(t, "Tour not found", apiErr.Message)
}

func TestMalformedSectionLeavesRecordUntouched(t *testing.T) {
	srv := newServer(t)
	c := newClient(t, srv)
	ctx := context.Background()

	payload, err := dehydrate.FullPayload(form.TourForm{Title: "Original", Excerpt: "Keep me."})
	require.NoError(t, err)
	created, err := c.CreateTour(ctx, payload)
	require.NoError(t, err)

	// hand-rolled PATCH: a valid title alongside a pricing body that is not
	// JSON; the request must fail as a whole, not field by field
	token, _ := login(t, srv)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "Sneaky New Title"))
	require.NoError(t, mw.WriteField("pricing", "{not json"))
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/api/tours/"+created.TourID, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	after, err := c.GetTour(ctx, created.TourID)
	require.NoError(t, err)
	require.Equal(t, "Original", after.Title, "no partial state from a rejected patch")
	require.Equal(t, "Keep me.", after.Excerpt)
}

func TestCreateRequiresTitle(t *testing.T) {
	srv := newServer(t)
	c := newClient(t, srv)

	payload, err := dehydrate.FullPayload(form.TourForm{Excerpt: "no title"})
	require.NoError(t, err)

	_, err = c.CreateTour(context.Background(), payload)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
	require.Equal(t, "Missing tour title", apiErr.Message)
}

func TestOwnershipEnforced(t *testing.T) {
	srv := newServer(t)
	c := newClient(t, srv)
	ctx := context.Background()

	payload, err := dehydrate.FullPayload(form.TourForm{Title: "Mine"})
	require.NoError(t, err)
	created, err := c.CreateTour(ctx, payload)
	require.NoError(t, err)

	// a token for a different user cannot touch the tour
	otherToken, err := stubapi.IssueToken(testSecret, "u-other", "other@tourdesk.local")
	require.NoError(t, err)
	other, err := client.New(client.Config{
		BaseURL: srv.URL,
		Token:   otherToken,
		UserID:  "u-other",
		RPS:     100,
	}, nil)
	require.NoError(t, err)

	err = other.DeleteTour(ctx, created.TourID)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.StatusCode)
}

func TestRequestsWithoutTokenRejected(t *testing.T) {
	srv := newServer(t)
	anon, err := client.New(client.Config{BaseURL: srv.URL}, nil)
	require.NoError(t, err)

	_, err = anon.ListTours(context.Background())
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.StatusCode)
}
