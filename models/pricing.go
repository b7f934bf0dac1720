package models

// Pricing is the pricing section of a tour record.
type Pricing struct {
	Price          FlexFloat      `json:"price"`
	PerPerson      FlexBool       `json:"perPerson"` // false = per group
	PaxRange       PaxRange       `json:"paxRange"`
	GroupSize      FlexInt        `json:"groupSize"`
	Discount       Discount       `json:"discount"`
	PricingOptions PricingOptions `json:"pricingOptions"`
	PriceLockedAt  *DateRange     `json:"priceLockedUntil,omitempty"`
}

// PaxRange is [min, max] passengers.
type PaxRange [2]int

// Min returns the lower bound, defaulting when unset.
func (p PaxRange) Min() int {
	if p[0] == 0 {
		return 1
	}
	return p[0]
}

// Max returns the upper bound, defaulting when unset.
func (p PaxRange) Max() int {
	if p[1] == 0 {
		return 10
	}
	return p[1]
}

// Discount is the optional price reduction attached to a price or an option.
type Discount struct {
	Enabled   FlexBool  `json:"enabled"`
	Price     FlexFloat `json:"price,omitempty"`
	Percent   FlexFloat `json:"percentage,omitempty"`
	DateRange DateRange `json:"dateRange,omitempty"`
}

// PricingOptions wraps the per-traveler-type price list.
type PricingOptions struct {
	Enabled FlexBool        `json:"enabled"`
	Options []PricingOption `json:"options"`
}

type PricingCategory string

const (
	PricingAdult   PricingCategory = "adult"
	PricingChild   PricingCategory = "child"
	PricingSenior  PricingCategory = "senior"
	PricingStudent PricingCategory = "student"
	PricingCustom  PricingCategory = "custom"
)

// PricingOption is one named price line (adult, child, ...).
type PricingOption struct {
	Name           string          `json:"name"`
	Category       PricingCategory `json:"category"`
	CustomCategory string          `json:"customCategory,omitempty"`
	Price          FlexFloat       `json:"price"`
	Discount       Discount        `json:"discount"`
	PaxRange       PaxRange        `json:"paxRange"`
}
