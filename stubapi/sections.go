package stubapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"tourdesk/coerce"
	"tourdesk/form"
	"tourdesk/models"
)

// applySections writes every multipart section present in the request onto
// the record. Absent sections are left untouched; that is the sparse-PATCH
// contract the console's diff pipeline relies on.
func applySections(r *http.Request, t *models.Tour) error {
	scalar := func(name string, dst *string) {
		if vs, ok := r.MultipartForm.Value[name]; ok && len(vs) > 0 {
			*dst = vs[0]
		}
	}
	flag := func(name string, dst *models.FlexBool) {
		if vs, ok := r.MultipartForm.Value[name]; ok && len(vs) > 0 {
			*dst = models.FlexBool(coerce.Bool(vs[0]))
		}
	}

	scalar("title", &t.Title)
	scalar("code", &t.Code)
	scalar("excerpt", &t.Excerpt)
	scalar("description", &t.Description)
	scalar("tourStatus", &t.TourStatus)
	scalar("coverImage", &t.CoverImage)
	scalar("file", &t.File)
	scalar("outline", &t.Outline)
	scalar("include", &t.Include)
	scalar("exclude", &t.Exclude)
	scalar("destination", &t.Destination)
	scalar("map", &t.Map)
	flag("enquiry", &t.Enquiry)
	flag("isSpecialOffer", &t.IsSpecialOffer)

	jsonSections := map[string]func(raw []byte) error{
		"pricing": func(raw []byte) error {
			var pf form.PricingForm
			if err := json.Unmarshal(raw, &pf); err != nil {
				return err
			}
			t.Pricing = pricingRecord(pf)
			return nil
		},
		"dates": func(raw []byte) error {
			var df form.DatesForm
			if err := json.Unmarshal(raw, &df); err != nil {
				return err
			}
			t.Dates = datesRecord(df)
			return nil
		},
		"itinerary": func(raw []byte) error {
			return json.Unmarshal(raw, &t.Itinerary)
		},
		"facts": func(raw []byte) error {
			var ff []form.FactForm
			if err := json.Unmarshal(raw, &ff); err != nil {
				return err
			}
			t.Facts = factRecords(ff)
			return nil
		},
		"faqs": func(raw []byte) error {
			return json.Unmarshal(raw, &t.FAQs)
		},
		"category": func(raw []byte) error {
			return json.Unmarshal(raw, &t.Category)
		},
		"location": func(raw []byte) error {
			return json.Unmarshal(raw, &t.Location)
		},
	}
	for name, decode := range jsonSections {
		vs, ok := r.MultipartForm.Value[name]
		if !ok || len(vs) == 0 {
			continue
		}
		if err := decode([]byte(vs[0])); err != nil {
			return fmt.Errorf("invalid %s section: %w", name, err)
		}
	}
	return nil
}

func pricingRecord(pf form.PricingForm) models.Pricing {
	p := models.Pricing{
		Price:     models.FlexFloat(pf.Price),
		PerPerson: models.FlexBool(pf.PerPerson),
		PaxRange:  models.PaxRange{pf.MinPax, pf.MaxPax},
		GroupSize: models.FlexInt(pf.GroupSize),
		Discount:  discountRecord(pf.Discount),
	}
	p.PricingOptions.Enabled = models.FlexBool(pf.OptionsEnabled)
	for _, opt := range pf.Options {
		p.PricingOptions.Options = append(p.PricingOptions.Options, models.PricingOption{
			Name:           opt.Name,
			Category:       opt.Category,
			CustomCategory: opt.CustomCategory,
			Price:          models.FlexFloat(opt.Price),
			Discount:       discountRecord(opt.Discount),
			PaxRange:       models.PaxRange{opt.MinPax, opt.MaxPax},
		})
	}
	return p
}

func discountRecord(d form.DiscountForm) models.Discount {
	return models.Discount{
		Enabled:   models.FlexBool(d.Enabled),
		Price:     models.FlexFloat(d.Price),
		Percent:   models.FlexFloat(d.Percent),
		DateRange: d.DateRange,
	}
}

func datesRecord(df form.DatesForm) models.TourDates {
	d := models.TourDates{
		Days:           models.FlexInt(df.Days),
		Nights:         models.FlexInt(df.Nights),
		FixedDeparture: models.FlexBool(df.FixedDeparture),
		MultipleDates:  models.FlexBool(df.MultipleDates),
		ScheduleType:   df.ScheduleType,
		DateRange:      df.DateRange,
	}
	for _, dep := range df.Departures {
		if dep.ID == "" {
			dep.ID = uuid.NewString()
		}
		d.Departures = append(d.Departures, models.Departure{
			ID:             dep.ID,
			Label:          dep.Label,
			DateRange:      dep.DateRange,
			Recurring:      models.FlexBool(dep.Recurring),
			Pattern:        dep.Pattern,
			RecurrenceEnd:  dep.RecurrenceEnd,
			PricingOptions: dep.PricingOptions,
			Capacity:       models.FlexInt(dep.Capacity),
		})
	}
	return d
}

func factRecords(ff []form.FactForm) []models.Fact {
	out := make([]models.Fact, 0, len(ff))
	for _, f := range ff {
		fact := models.Fact{
			Title:     f.Title,
			FieldType: f.FieldType,
			Value:     f.Value,
			Icon:      f.Icon,
		}
		fact.Normalize()
		out = append(out, fact)
	}
	return out
}
