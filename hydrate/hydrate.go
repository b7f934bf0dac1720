// Package hydrate maps a fetched server tour record into the editable form
// model. The transform is idempotent: it re-runs whenever a reference catalog
// finishes loading, in whatever order the fetches land.
package hydrate

import (
	"time"

	"tourdesk/coerce"
	"tourdesk/form"
	"tourdesk/models"
)

// Catalogs is the reference data facts, FAQs, and dropdowns link against.
// Any of the slices may still be empty while its fetch is in flight.
type Catalogs struct {
	Facts        []models.FactDefinition
	FAQs         []models.FAQDefinition
	Categories   []models.Category
	Destinations []models.Destination
}

// Snapshot builds the initial form state from a server record.
func Snapshot(t *models.Tour, ref Catalogs) form.TourForm {
	return SnapshotAt(t, ref, time.Now())
}

// SnapshotAt is Snapshot with an explicit clock, used for defaulted date
// ranges. Two calls with equal inputs produce deep-equal snapshots.
func SnapshotAt(t *models.Tour, ref Catalogs, now time.Time) form.TourForm {
	f := form.TourForm{
		TourID:         t.TourID,
		Title:          t.Title,
		Code:           t.Code,
		Excerpt:        t.Excerpt,
		Description:    t.Description,
		TourStatus:     t.TourStatus,
		CoverImage:     t.CoverImage,
		File:           t.File,
		Outline:        t.Outline,
		Include:        t.Include,
		Exclude:        t.Exclude,
		Destination:    t.Destination,
		Map:            t.Map,
		Enquiry:        t.Enquiry.Bool(),
		IsSpecialOffer: t.IsSpecialOffer.Bool(),
		Location:       t.Location,
	}
	if f.TourStatus == "" {
		f.TourStatus = string(models.StatusDraft)
	}

	f.Pricing = pricingForm(t.Pricing, now)
	f.Dates = datesForm(t.Dates, now)
	f.Itinerary = itineraryForm(t.Itinerary)
	f.Facts = factForms(t.Facts, ref.Facts)
	f.FAQs = faqForms(t.FAQs, ref.FAQs)
	f.Category = categoryForm(t.Category)

	return f
}

func pricingForm(p models.Pricing, now time.Time) form.PricingForm {
	out := form.PricingForm{
		Price:          p.Price.Float(),
		PerPerson:      p.PerPerson.Bool(),
		MinPax:         p.PaxRange.Min(),
		MaxPax:         p.PaxRange.Max(),
		GroupSize:      p.GroupSize.Int(),
		Discount:       discountForm(p.Discount, now),
		OptionsEnabled: p.PricingOptions.Enabled.Bool(),
		Options:        []form.PricingOptionForm{},
	}
	for _, opt := range p.PricingOptions.Options {
		out.Options = append(out.Options, form.PricingOptionForm{
			Name:           opt.Name,
			Category:       opt.Category,
			CustomCategory: opt.CustomCategory,
			Price:          opt.Price.Float(),
			Discount:       discountForm(opt.Discount, now),
			MinPax:         opt.PaxRange.Min(),
			MaxPax:         opt.PaxRange.Max(),
		})
	}
	return out
}

func discountForm(d models.Discount, now time.Time) form.DiscountForm {
	out := form.DiscountForm{
		Enabled: d.Enabled.Bool(),
		Price:   d.Price.Float(),
		Percent: d.Percent.Float(),
	}
	if d.Enabled.Bool() {
		out.DateRange = coerce.AsDateRange(d.DateRange, now)
	} else {
		out.DateRange = d.DateRange
	}
	return out
}

func datesForm(d models.TourDates, now time.Time) form.DatesForm {
	out := form.DatesForm{
		Days:           d.Days.Int(),
		Nights:         d.Nights.Int(),
		FixedDeparture: d.FixedDeparture.Bool(),
		MultipleDates:  d.MultipleDates.Bool(),
		ScheduleType:   d.ScheduleType,
		DateRange:      d.DateRange,
		Departures:     []form.DepartureForm{},
	}
	if out.ScheduleType == "" {
		out.ScheduleType = models.ScheduleFlexible
	}
	if out.FixedDeparture && !out.MultipleDates {
		out.DateRange = coerce.AsDateRange(d.DateRange, now)
	}
	for _, dep := range d.Departures {
		out.Departures = append(out.Departures, form.DepartureForm{
			ID:             dep.ID,
			Label:          dep.Label,
			DateRange:      coerce.AsDateRange(dep.DateRange, now),
			Recurring:      dep.Recurring.Bool(),
			Pattern:        dep.Pattern,
			RecurrenceEnd:  dep.RecurrenceEnd,
			PricingOptions: dep.PricingOptions,
			Capacity:       dep.Capacity.Int(),
		})
	}
	return out
}

func itineraryForm(days []models.ItineraryDay) []models.ItineraryDay {
	if len(days) == 0 {
		return []models.ItineraryDay{form.BlankItineraryDay()}
	}
	out := make([]models.ItineraryDay, len(days))
	copy(out, days)
	return out
}

func factForms(facts []models.Fact, catalog []models.FactDefinition) []form.FactForm {
	titles := make([]string, len(catalog))
	for i, d := range catalog {
		titles[i] = d.Title
	}

	out := make([]form.FactForm, 0, len(facts))
	for _, fact := range facts {
		ff := form.FactForm{
			Title:     fact.Title,
			FieldType: fact.FieldType,
			Value:     fact.Value,
			Icon:      fact.Icon,
		}
		if i, ok := Match(fact.Title, titles); ok {
			def := catalog[i]
			ff.CatalogID = def.ID
			ff.Title = def.Title
			if def.FieldType != "" {
				ff.FieldType = def.FieldType
			}
			if ff.Icon == "" {
				ff.Icon = def.Icon
			}
		}
		if ff.FieldType == "" {
			ff.FieldType = models.FactPlainText
		}
		repaired := models.Fact{FieldType: ff.FieldType, Value: ff.Value}
		repaired.Normalize()
		ff.Value = repaired.Value
		out = append(out, ff)
	}
	return out
}

func faqForms(faqs []models.FAQ, catalog []models.FAQDefinition) []models.FAQ {
	questions := make([]string, len(catalog))
	for i, d := range catalog {
		questions[i] = d.Question
	}

	out := make([]models.FAQ, 0, len(faqs))
	for _, faq := range faqs {
		if i, ok := Match(faq.Question, questions); ok {
			faq.Question = catalog[i].Question
			if faq.Answer == "" {
				faq.Answer = catalog[i].Answer
			}
		}
		out = append(out, faq)
	}
	return out
}

func categoryForm(cats []models.Category) []models.Category {
	if len(cats) == 0 {
		return []models.Category{form.BlankCategory()}
	}
	out := make([]models.Category, len(cats))
	copy(out, cats)
	return out
}
