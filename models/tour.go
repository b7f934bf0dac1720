package models

import (
	"time"

	"tourdesk/coerce"
)

// Canonical shapes shared with the coercion layer.
type (
	Option    = coerce.Option
	DateRange = coerce.DateRange
)

// Tour is the server-shaped record. It is the source of truth; the dashboard
// never persists anything beyond the current form session.
type Tour struct {
	TourID         string         `json:"tourid"`
	UserID         string         `json:"userId"`
	Title          string         `json:"title"`
	Code           string         `json:"code"`
	Excerpt        string         `json:"excerpt"`
	Description    string         `json:"description"`
	TourStatus     string         `json:"tourStatus"`
	CoverImage     string         `json:"coverImage"`
	File           string         `json:"file"`
	Outline        string         `json:"outline"`
	Include        string         `json:"include"`
	Exclude        string         `json:"exclude"`
	Destination    string         `json:"destination"`
	Map            string         `json:"map"`
	Enquiry        FlexBool       `json:"enquiry"`
	IsSpecialOffer FlexBool       `json:"isSpecialOffer"`
	Pricing        Pricing        `json:"pricing"`
	Dates          TourDates      `json:"dates"`
	Itinerary      []ItineraryDay `json:"itinerary"`
	Facts          []Fact         `json:"facts"`
	FAQs           []FAQ          `json:"faqs"`
	Gallery        []GalleryImage `json:"gallery"`
	Category       []Category     `json:"category"`
	Location       Location       `json:"location"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type TourStatus string

const (
	StatusDraft     TourStatus = "draft"
	StatusPublished TourStatus = "published"
	StatusArchived  TourStatus = "archived"
)

// ItineraryDay is one ordered entry of a tour itinerary.
type ItineraryDay struct {
	Day         string    `json:"day" yaml:"day"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"` // rich text
	DateTime    time.Time `json:"dateTime,omitempty" yaml:"dateTime,omitempty"`
}

type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

type GalleryImage struct {
	Image      string `json:"image"`
	SortOrder  int    `json:"sortOrder"`
	IsFeatured bool   `json:"isFeatured"`
}

type Category struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	IsActive bool   `json:"isActive" yaml:"isActive"`
}

type Location struct {
	Street  string  `json:"street" yaml:"street"`
	City    string  `json:"city" yaml:"city"`
	State   string  `json:"state" yaml:"state"`
	Country string  `json:"country" yaml:"country"`
	ZipCode string  `json:"zip" yaml:"zip"`
	Lat     float64 `json:"lat" yaml:"lat"`
	Lng     float64 `json:"lng" yaml:"lng"`
	MapHTML string  `json:"map,omitempty" yaml:"map,omitempty"` // embed snippet
}

type Destination struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type Review struct {
	ReviewID  string    `json:"reviewid"`
	TourID    string    `json:"tourid"`
	UserID    string    `json:"userId"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// FactDefinition is a catalog entry tours link their facts against.
type FactDefinition struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	FieldType FactFieldType `json:"field_type"`
	Icon      string        `json:"icon"`
}

// FAQDefinition is a catalog entry tours link their FAQs against.
type FAQDefinition struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
