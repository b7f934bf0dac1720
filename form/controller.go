package form

import (
	"fmt"
	"time"

	"tourdesk/models"
)

// WatchFunc receives the new value of a watched path.
type WatchFunc func(value any)

// Controller owns one editing session's TourForm. It is single-owner: one
// form, one controller, no cross-goroutine sharing.
type Controller struct {
	form     *TourForm
	watchers map[string][]WatchFunc
}

// NewController wraps an initial snapshot (usually from hydrate.Snapshot).
func NewController(initial TourForm) *Controller {
	return &Controller{
		form:     &initial,
		watchers: make(map[string][]WatchFunc),
	}
}

// Form returns the live editable model.
func (c *Controller) Form() *TourForm { return c.form }

// Watch registers fn to run whenever path changes through the controller.
// Paths are the JSON-ish field paths used across the toolkit, e.g.
// "dates.dateRange" or "pricing.options".
func (c *Controller) Watch(path string, fn WatchFunc) {
	c.watchers[path] = append(c.watchers[path], fn)
}

func (c *Controller) notify(path string, v any) {
	for _, fn := range c.watchers[path] {
		fn(v)
	}
}

// SetDateRange updates the single date range and recomputes the derived
// day/night counts when the tour is not a multiple-departures one.
func (c *Controller) SetDateRange(r models.DateRange) {
	c.form.Dates.DateRange = r
	c.notify("dates.dateRange", r)
	if c.form.Dates.MultipleDates {
		return
	}
	days := DaySpan(r)
	nights := days - 1
	if nights < 0 {
		nights = 0
	}
	c.form.Dates.Days = days
	c.form.Dates.Nights = nights
	c.notify("dates.days", days)
	c.notify("dates.nights", nights)
}

// DaySpan is the inclusive day count of a range; a one-day trip spans 1.
func DaySpan(r models.DateRange) int {
	from := time.Date(r.From.Year(), r.From.Month(), r.From.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(r.To.Year(), r.To.Month(), r.To.Day(), 0, 0, 0, 0, time.UTC)
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

// SetScalar updates a named scalar field and fires its watchers. Unknown
// paths panic: a bad path is a programming error, not user input.
func (c *Controller) SetScalar(path string, v any) {
	switch path {
	case "title":
		c.form.Title = v.(string)
	case "code":
		c.form.Code = v.(string)
	case "excerpt":
		c.form.Excerpt = v.(string)
	case "description":
		c.form.Description = v.(string)
	case "tourStatus":
		c.form.TourStatus = v.(string)
	case "coverImage":
		c.form.CoverImage = v.(string)
	case "file":
		c.form.File = v.(string)
	case "outline":
		c.form.Outline = v.(string)
	case "include":
		c.form.Include = v.(string)
	case "exclude":
		c.form.Exclude = v.(string)
	case "destination":
		c.form.Destination = v.(string)
	case "map":
		c.form.Map = v.(string)
	case "enquiry":
		c.form.Enquiry = v.(bool)
	case "isSpecialOffer":
		c.form.IsSpecialOffer = v.(bool)
	default:
		panic(fmt.Sprintf("form: unknown scalar path %q", path))
	}
	c.notify(path, v)
}

// Itinerary returns the itinerary field array.
func (c *Controller) Itinerary() *FieldArray[models.ItineraryDay] {
	return &FieldArray[models.ItineraryDay]{
		items:  &c.form.Itinerary,
		path:   "itinerary",
		notify: c.notify,
	}
}

// Facts returns the facts field array.
func (c *Controller) Facts() *FieldArray[FactForm] {
	return &FieldArray[FactForm]{items: &c.form.Facts, path: "facts", notify: c.notify}
}

// FAQs returns the FAQ field array.
func (c *Controller) FAQs() *FieldArray[models.FAQ] {
	return &FieldArray[models.FAQ]{items: &c.form.FAQs, path: "faqs", notify: c.notify}
}

// PricingOptions returns the pricing options field array.
func (c *Controller) PricingOptions() *FieldArray[PricingOptionForm] {
	return &FieldArray[PricingOptionForm]{
		items:  &c.form.Pricing.Options,
		path:   "pricing.options",
		notify: c.notify,
	}
}

// Departures returns the departures field array.
func (c *Controller) Departures() *FieldArray[DepartureForm] {
	return &FieldArray[DepartureForm]{
		items:  &c.form.Dates.Departures,
		path:   "dates.departures",
		notify: c.notify,
	}
}

// FieldArray is a variable-length list of repeated form entries. Structural
// operations cannot fail; an out-of-range index panics.
type FieldArray[T any] struct {
	items  *[]T
	path   string
	notify func(path string, v any)
}

func (a *FieldArray[T]) Len() int { return len(*a.items) }

func (a *FieldArray[T]) At(i int) T {
	a.check(i)
	return (*a.items)[i]
}

func (a *FieldArray[T]) Set(i int, v T) {
	a.check(i)
	(*a.items)[i] = v
	a.notify(a.path, *a.items)
}

func (a *FieldArray[T]) Append(v T) {
	*a.items = append(*a.items, v)
	a.notify(a.path, *a.items)
}

func (a *FieldArray[T]) Remove(i int) {
	a.check(i)
	*a.items = append((*a.items)[:i], (*a.items)[i+1:]...)
	a.notify(a.path, *a.items)
}

func (a *FieldArray[T]) All() []T { return *a.items }

func (a *FieldArray[T]) check(i int) {
	if i < 0 || i >= len(*a.items) {
		panic(fmt.Sprintf("form: index %d out of range for %s (len %d)", i, a.path, len(*a.items)))
	}
}
