// Package schema validates a TourForm before submission. Create mode enforces
// required fields; edit mode is deliberately permissive because a sparse
// update omits unchanged required fields by design.
package schema

import (
	"fmt"
	"strings"

	"tourdesk/form"
	"tourdesk/models"
)

type Mode int

const (
	// ModeStrict is used when creating a new tour.
	ModeStrict Mode = iota
	// ModePermissive is used when editing an existing one.
	ModePermissive
)

// ModeFor selects the schema by presence of an identifier.
func ModeFor(tourID string) Mode {
	if tourID == "" {
		return ModeStrict
	}
	return ModePermissive
}

// FieldError is one per-field validation failure, addressed by path so the
// UI can attach it to the offending input.
type FieldError struct {
	Path    string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Errors is the full set of failures for one validation run.
type Errors []FieldError

func (es Errors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// ByPath returns the first error attached to path, if any.
func (es Errors) ByPath(path string) (FieldError, bool) {
	for _, e := range es {
		if e.Path == path {
			return e, true
		}
	}
	return FieldError{}, false
}

// Validate runs per-field checks, then the cross-field refinements. A nil
// return means the form may be submitted.
func Validate(f *form.TourForm, mode Mode) Errors {
	var errs Errors
	add := func(path, msg string) {
		errs = append(errs, FieldError{Path: path, Message: msg})
	}

	if mode == ModeStrict {
		if strings.TrimSpace(f.Title) == "" {
			add("title", "title is required")
		}
		if strings.TrimSpace(f.Excerpt) == "" {
			add("excerpt", "excerpt is required")
		}
		if len(f.Category) == 0 || strings.TrimSpace(f.Category[0].Name) == "" {
			add("category", "at least one category is required")
		}
		if f.Pricing.Price < 0 {
			add("pricing.price", "price must not be negative")
		}
	}

	for i, day := range f.Itinerary {
		if mode == ModeStrict && strings.TrimSpace(day.Title) == "" {
			add(fmt.Sprintf("itinerary[%d].title", i), "itinerary title is required")
		}
	}
	for i, faq := range f.FAQs {
		if strings.TrimSpace(faq.Question) != "" && strings.TrimSpace(faq.Answer) == "" {
			add(fmt.Sprintf("faqs[%d].answer", i), "answer is required when a question is set")
		}
	}

	// cross-field refinements
	refinePricing(f, add)
	refineDates(f, add, mode)

	return errs
}

type addFunc func(path, msg string)

func refinePricing(f *form.TourForm, add addFunc) {
	if f.Pricing.MinPax > f.Pricing.MaxPax {
		add("pricing.paxRange", "minimum pax must not exceed maximum pax")
	}
	refineDiscount("pricing.discount", f.Pricing.Discount, add)

	if f.Pricing.OptionsEnabled {
		if len(f.Pricing.Options) == 0 {
			add("pricing.options", "at least one pricing option is required when options are enabled")
		}
		for i, opt := range f.Pricing.Options {
			p := fmt.Sprintf("pricing.options[%d]", i)
			if strings.TrimSpace(opt.Name) == "" {
				add(p+".name", "option name is required")
			}
			if opt.Price < 0 {
				add(p+".price", "option price must not be negative")
			}
			if opt.Category == models.PricingCustom && strings.TrimSpace(opt.CustomCategory) == "" {
				add(p+".customCategory", "custom category label is required")
			}
			if opt.MinPax > opt.MaxPax {
				add(p+".paxRange", "minimum pax must not exceed maximum pax")
			}
			refineDiscount(p+".discount", opt.Discount, add)
		}
	}
}

func refineDiscount(path string, d form.DiscountForm, add addFunc) {
	if !d.Enabled {
		return
	}
	if d.Percent == 0 && d.Price == 0 {
		add(path, "an enabled discount needs a percentage or a discount price")
	}
	if d.Percent < 0 || d.Percent > 100 {
		add(path+".percentage", "percentage must be between 0 and 100")
	}
}

func refineDates(f *form.TourForm, add addFunc, mode Mode) {
	d := f.Dates
	switch {
	case !d.FixedDeparture:
		if mode == ModeStrict && d.Days <= 0 {
			add("dates.days", "day count is required for flexible tours")
		}
		if d.Nights > d.Days {
			add("dates.nights", "nights cannot exceed days")
		}
	case !d.MultipleDates:
		if d.DateRange.IsZero() {
			add("dates.dateRange", "a date range is required for a fixed departure")
		} else if d.DateRange.To.Before(d.DateRange.From) {
			add("dates.dateRange", "range end must not precede range start")
		}
	default:
		if len(d.Departures) == 0 {
			add("dates.departures", "at least one departure is required")
		}
		for i, dep := range d.Departures {
			p := fmt.Sprintf("dates.departures[%d]", i)
			if dep.DateRange.To.Before(dep.DateRange.From) {
				add(p+".dateRange", "range end must not precede range start")
			}
			if dep.Recurring && dep.Pattern == "" {
				add(p+".recurrencePattern", "a recurrence pattern is required for recurring departures")
			}
		}
	}
}
