package form

import (
	"time"

	"tourdesk/models"
)

// TourForm is the flat, editable, client-shaped model the dashboard works on.
// Everything here is canonically typed; the hydration pipeline owns the
// conversion from the loose server record.
type TourForm struct {
	TourID         string `json:"tourid,omitempty" yaml:"tourid,omitempty"`
	Title          string `json:"title" yaml:"title"`
	Code           string `json:"code" yaml:"code"`
	Excerpt        string `json:"excerpt" yaml:"excerpt"`
	Description    string `json:"description" yaml:"description"`
	TourStatus     string `json:"tourStatus" yaml:"tourStatus"`
	CoverImage     string `json:"coverImage" yaml:"coverImage"`
	File           string `json:"file" yaml:"file"`
	Outline        string `json:"outline" yaml:"outline"`
	Include        string `json:"include" yaml:"include"`
	Exclude        string `json:"exclude" yaml:"exclude"`
	Destination    string `json:"destination" yaml:"destination"`
	Map            string `json:"map" yaml:"map"`
	Enquiry        bool   `json:"enquiry" yaml:"enquiry"`
	IsSpecialOffer bool   `json:"isSpecialOffer" yaml:"isSpecialOffer"`

	Pricing   PricingForm           `json:"pricing" yaml:"pricing"`
	Dates     DatesForm             `json:"dates" yaml:"dates"`
	Itinerary []models.ItineraryDay `json:"itinerary" yaml:"itinerary"`
	Facts     []FactForm            `json:"facts" yaml:"facts"`
	FAQs      []models.FAQ          `json:"faqs" yaml:"faqs"`
	Category  []models.Category     `json:"category" yaml:"category"`
	Location  models.Location       `json:"location" yaml:"location"`
}

type PricingForm struct {
	Price          float64             `json:"price" yaml:"price"`
	PerPerson      bool                `json:"perPerson" yaml:"perPerson"`
	MinPax         int                 `json:"minPax" yaml:"minPax"`
	MaxPax         int                 `json:"maxPax" yaml:"maxPax"`
	GroupSize      int                 `json:"groupSize" yaml:"groupSize"`
	Discount       DiscountForm        `json:"discount" yaml:"discount"`
	OptionsEnabled bool                `json:"optionsEnabled" yaml:"optionsEnabled"`
	Options        []PricingOptionForm `json:"options" yaml:"options,omitempty"`
}

type DiscountForm struct {
	Enabled   bool             `json:"enabled" yaml:"enabled"`
	Price     float64          `json:"price" yaml:"price"`
	Percent   float64          `json:"percentage" yaml:"percentage"`
	DateRange models.DateRange `json:"dateRange" yaml:"dateRange"`
}

type PricingOptionForm struct {
	Name           string                 `json:"name" yaml:"name"`
	Category       models.PricingCategory `json:"category" yaml:"category"`
	CustomCategory string                 `json:"customCategory,omitempty" yaml:"customCategory,omitempty"`
	Price          float64                `json:"price" yaml:"price"`
	Discount       DiscountForm           `json:"discount" yaml:"discount"`
	MinPax         int                    `json:"minPax" yaml:"minPax"`
	MaxPax         int                    `json:"maxPax" yaml:"maxPax"`
}

type DatesForm struct {
	Days           int                  `json:"days" yaml:"days"`
	Nights         int                  `json:"nights" yaml:"nights"`
	FixedDeparture bool                 `json:"fixedDeparture" yaml:"fixedDeparture"`
	MultipleDates  bool                 `json:"multipleDates" yaml:"multipleDates"`
	ScheduleType   models.ScheduleType  `json:"scheduleType" yaml:"scheduleType"`
	DateRange      models.DateRange     `json:"dateRange" yaml:"dateRange"`
	Departures     []DepartureForm      `json:"departures" yaml:"departures,omitempty"`
}

type DepartureForm struct {
	ID             string                   `json:"id" yaml:"id"`
	Label          string                   `json:"label" yaml:"label"`
	DateRange      models.DateRange         `json:"dateRange" yaml:"dateRange"`
	Recurring      bool                     `json:"recurring" yaml:"recurring"`
	Pattern        models.RecurrencePattern `json:"recurrencePattern,omitempty" yaml:"recurrencePattern,omitempty"`
	RecurrenceEnd  *time.Time               `json:"recurrenceEndDate,omitempty" yaml:"recurrenceEndDate,omitempty"`
	PricingOptions []string                 `json:"selectedPricingOptions,omitempty" yaml:"selectedPricingOptions,omitempty"`
	Capacity       int                      `json:"capacity" yaml:"capacity"`
}

type FactForm struct {
	Title     string               `json:"title" yaml:"title"`
	FieldType models.FactFieldType `json:"field_type" yaml:"field_type"`
	Value     models.FactValue     `json:"value" yaml:"value"`
	Icon      string               `json:"icon,omitempty" yaml:"icon,omitempty"`
	// CatalogID is set when the hydration pipeline relinks the fact to a
	// catalog definition.
	CatalogID string `json:"catalogId,omitempty" yaml:"catalogId,omitempty"`
}

type FAQForm = models.FAQ

// BlankItineraryDay is the stable default row hydration inserts when the
// record carries no itinerary.
func BlankItineraryDay() models.ItineraryDay {
	return models.ItineraryDay{Day: "Day 1"}
}

// BlankCategory is the stable default entry for a record without categories.
func BlankCategory() models.Category {
	return models.Category{IsActive: true}
}
