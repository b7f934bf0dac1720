package tourfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tourdesk/form"
	"tourdesk/models"
)

func sampleForm() form.TourForm {
	return form.TourForm{
		TourID:  "t1",
		Title:   "Everest Base Camp",
		Excerpt: "Fourteen days to Kala Patthar.",
		Pricing: form.PricingForm{Price: 1450, PerPerson: true, MinPax: 2, MaxPax: 12},
		Itinerary: []models.ItineraryDay{
			{Day: "Day 1", Title: "Arrive Kathmandu"},
		},
		Facts: []form.FactForm{
			{Title: "Difficulty", FieldType: models.FactSingleSelect, Value: models.PlainValue("Strenuous")},
		},
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.yaml")
	want := sampleForm()

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, want.Title, got.Title)
	require.Equal(t, want.Pricing, got.Pricing)
	require.Equal(t, want.Itinerary, got.Itinerary)
	require.Equal(t, "Difficulty", got.Facts[0].Title)
	require.Equal(t, []string{"Strenuous"}, got.Facts[0].Value.Texts)
}

func TestYAMLNilSlicesStayNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.yaml")
	require.NoError(t, Save(path, sampleForm()))

	got, err := Load(path)
	require.NoError(t, err)
	require.Nil(t, got.Pricing.Options, "absent options list must not decode as empty")
	require.Nil(t, got.Dates.Departures, "absent departures list must not decode as empty")
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.json")
	want := sampleForm()

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, want.Title, got.Title)
	require.Equal(t, want.Pricing, got.Pricing)
	require.Equal(t, []string{"Strenuous"}, got.Facts[0].Value.Texts)
}

func TestUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = 'x'"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported file type")

	err = Save(filepath.Join(t.TempDir(), "tour.txt"), sampleForm())
	require.Error(t, err)
}
