package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tourdesk/models"
)

func sampleTour() *models.Tour {
	return &models.Tour{
		TourID:      "t1",
		Title:       "Everest Base Camp",
		Code:        "EBC-14",
		Excerpt:     "Fourteen days to Kala Patthar.",
		TourStatus:  "published",
		Destination: "Nepal",
		Dates:       models.TourDates{Days: 14, Nights: 13},
		Pricing: models.Pricing{
			Price:     1450,
			PerPerson: true,
			PaxRange:  models.PaxRange{2, 12},
			PricingOptions: models.PricingOptions{
				Enabled: true,
				Options: []models.PricingOption{
					{Name: "Adult", Category: models.PricingAdult, Price: 1450},
				},
			},
		},
		Itinerary: []models.ItineraryDay{
			{Day: "Day 1", Title: "Arrive Kathmandu", Description: "<p>Transfer to hotel.</p>"},
		},
		Facts: []models.Fact{
			{Title: "Difficulty", FieldType: models.FactSingleSelect, Value: models.PlainValue("Strenuous")},
		},
		UpdatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFactSheetProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FactSheet(&buf, sampleTour(), "https://tours.example.com"))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output should be a PDF")
}

func TestTourListRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TourList(&buf, []models.Tour{*sampleTour()}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Tours", "B2")
	require.NoError(t, err)
	require.Equal(t, "Everest Base Camp", title)

	status, err := f.GetCellValue("Tours", "D2")
	require.NoError(t, err)
	require.Equal(t, "published", status)
}

func TestStripTags(t *testing.T) {
	require.Equal(t, "Transfer to hotel.", stripTags("<p>Transfer to <b>hotel</b>.</p>"))
}
