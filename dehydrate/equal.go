package dehydrate

import (
	"tourdesk/form"
	"tourdesk/models"
)

// Typed structural equality per section. reflect.DeepEqual is avoided on
// purpose: time.Time carries monotonic-clock and location state that makes
// wall-clock-equal instants compare unequal, and the old stringify comparison
// was sensitive to key order. These treat equal instants as equal and ignore
// representation.

func equalDateRange(a, b models.DateRange) bool {
	return a.From.Equal(b.From) && a.To.Equal(b.To)
}

func equalDiscount(a, b form.DiscountForm) bool {
	return a.Enabled == b.Enabled &&
		a.Price == b.Price &&
		a.Percent == b.Percent &&
		equalDateRange(a.DateRange, b.DateRange)
}

func equalPricing(a, b form.PricingForm) bool {
	if a.Price != b.Price || a.PerPerson != b.PerPerson ||
		a.MinPax != b.MinPax || a.MaxPax != b.MaxPax ||
		a.GroupSize != b.GroupSize || a.OptionsEnabled != b.OptionsEnabled {
		return false
	}
	if !equalDiscount(a.Discount, b.Discount) {
		return false
	}
	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		x, y := a.Options[i], b.Options[i]
		if x.Name != y.Name || x.Category != y.Category ||
			x.CustomCategory != y.CustomCategory || x.Price != y.Price ||
			x.MinPax != y.MinPax || x.MaxPax != y.MaxPax {
			return false
		}
		if !equalDiscount(x.Discount, y.Discount) {
			return false
		}
	}
	return true
}

func equalDates(a, b form.DatesForm) bool {
	if a.Days != b.Days || a.Nights != b.Nights ||
		a.FixedDeparture != b.FixedDeparture || a.MultipleDates != b.MultipleDates ||
		a.ScheduleType != b.ScheduleType {
		return false
	}
	if !equalDateRange(a.DateRange, b.DateRange) {
		return false
	}
	if len(a.Departures) != len(b.Departures) {
		return false
	}
	for i := range a.Departures {
		if !equalDeparture(a.Departures[i], b.Departures[i]) {
			return false
		}
	}
	return true
}

func equalDeparture(a, b form.DepartureForm) bool {
	if a.ID != b.ID || a.Label != b.Label || a.Recurring != b.Recurring ||
		a.Pattern != b.Pattern || a.Capacity != b.Capacity {
		return false
	}
	if !equalDateRange(a.DateRange, b.DateRange) {
		return false
	}
	switch {
	case a.RecurrenceEnd == nil != (b.RecurrenceEnd == nil):
		return false
	case a.RecurrenceEnd != nil && !a.RecurrenceEnd.Equal(*b.RecurrenceEnd):
		return false
	}
	if len(a.PricingOptions) != len(b.PricingOptions) {
		return false
	}
	for i := range a.PricingOptions {
		if a.PricingOptions[i] != b.PricingOptions[i] {
			return false
		}
	}
	return true
}

func equalItinerary(a, b []models.ItineraryDay) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Day != b[i].Day || a[i].Title != b[i].Title ||
			a[i].Description != b[i].Description || !a[i].DateTime.Equal(b[i].DateTime) {
			return false
		}
	}
	return true
}

func equalFacts(a, b []form.FactForm) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Title != b[i].Title || a[i].FieldType != b[i].FieldType ||
			a[i].Icon != b[i].Icon || a[i].CatalogID != b[i].CatalogID {
			return false
		}
		if !equalFactValue(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}

func equalFactValue(a, b models.FactValue) bool {
	if len(a.Texts) != len(b.Texts) || len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Texts {
		if a.Texts[i] != b.Texts[i] {
			return false
		}
	}
	for i := range a.Options {
		if a.Options[i] != b.Options[i] {
			return false
		}
	}
	return true
}

func equalFAQs(a, b []models.FAQ) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalCategories(a, b []models.Category) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
