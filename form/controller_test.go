package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourdesk/models"
)

func dr(from, to string) models.DateRange {
	f, _ := time.Parse("2006-01-02", from)
	t, _ := time.Parse("2006-01-02", to)
	return models.DateRange{From: f, To: t}
}

func TestDayNightAutoCalc(t *testing.T) {
	c := NewController(TourForm{})
	c.SetDateRange(dr("2024-01-01", "2024-01-08"))
	assert.Equal(t, 8, c.Form().Dates.Days)
	assert.Equal(t, 7, c.Form().Dates.Nights)

	// same-day trip
	c.SetDateRange(dr("2024-01-01", "2024-01-01"))
	assert.Equal(t, 1, c.Form().Dates.Days)
	assert.Equal(t, 0, c.Form().Dates.Nights)

	// inverted range: zero days, never negative nights
	c.SetDateRange(dr("2024-01-08", "2024-01-01"))
	assert.Equal(t, 0, c.Form().Dates.Days)
	assert.Equal(t, 0, c.Form().Dates.Nights)
}

func TestDayNightSkippedForMultipleDates(t *testing.T) {
	c := NewController(TourForm{Dates: DatesForm{MultipleDates: true, Days: 3, Nights: 2}})
	c.SetDateRange(dr("2024-01-01", "2024-01-08"))
	assert.Equal(t, 3, c.Form().Dates.Days)
	assert.Equal(t, 2, c.Form().Dates.Nights)
}

func TestWatch(t *testing.T) {
	c := NewController(TourForm{})
	var got []any
	c.Watch("dates.days", func(v any) { got = append(got, v) })
	c.Watch("title", func(v any) { got = append(got, v) })

	c.SetDateRange(dr("2024-05-01", "2024-05-03"))
	c.SetScalar("title", "Annapurna Circuit")

	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0])
	assert.Equal(t, "Annapurna Circuit", got[1])
}

func TestFieldArrayOps(t *testing.T) {
	c := NewController(TourForm{})
	it := c.Itinerary()

	it.Append(models.ItineraryDay{Day: "Day 1", Title: "Arrival"})
	it.Append(models.ItineraryDay{Day: "Day 2", Title: "Trek"})
	require.Equal(t, 2, it.Len())
	assert.Equal(t, "Trek", it.At(1).Title)

	it.Remove(0)
	require.Equal(t, 1, it.Len())
	assert.Equal(t, "Trek", it.At(0).Title)
	assert.Equal(t, 1, len(c.Form().Itinerary))
}

func TestFieldArrayPanicsOnBadIndex(t *testing.T) {
	c := NewController(TourForm{})
	assert.Panics(t, func() { c.FAQs().Remove(0) })
	assert.Panics(t, func() { c.PricingOptions().At(3) })
}

func TestSetScalarUnknownPathPanics(t *testing.T) {
	c := NewController(TourForm{})
	assert.Panics(t, func() { c.SetScalar("nope", "x") })
}
