package models

import "time"

type ScheduleType string

const (
	ScheduleFlexible  ScheduleType = "flexible"
	ScheduleFixed     ScheduleType = "fixed"
	ScheduleRecurring ScheduleType = "recurring"
)

type RecurrencePattern string

const (
	RecurDaily     RecurrencePattern = "daily"
	RecurWeekly    RecurrencePattern = "weekly"
	RecurBiweekly  RecurrencePattern = "biweekly"
	RecurMonthly   RecurrencePattern = "monthly"
	RecurQuarterly RecurrencePattern = "quarterly"
	RecurYearly    RecurrencePattern = "yearly"
)

// TourDates is the schedule section of a tour record.
//
// Configuration rules: fixedDeparture=false needs only day/night counts;
// fixedDeparture=true with multipleDates=false needs the single dateRange;
// fixedDeparture=true with multipleDates=true needs at least one departure.
type TourDates struct {
	Days           FlexInt      `json:"days"`
	Nights         FlexInt      `json:"nights"`
	FixedDeparture FlexBool     `json:"fixedDeparture"`
	MultipleDates  FlexBool     `json:"multipleDates"`
	ScheduleType   ScheduleType `json:"scheduleType"`
	DateRange      DateRange    `json:"dateRange"`
	Departures     []Departure  `json:"departures"`
}

// Departure is one scheduled (possibly recurring) date range.
type Departure struct {
	ID             string            `json:"id"`
	Label          string            `json:"label"`
	DateRange      DateRange         `json:"dateRange"`
	Recurring      FlexBool          `json:"recurring"`
	Pattern        RecurrencePattern `json:"recurrencePattern,omitempty"`
	RecurrenceEnd  *time.Time        `json:"recurrenceEndDate,omitempty"`
	PricingOptions []string          `json:"selectedPricingOptions,omitempty"`
	Capacity       FlexInt           `json:"capacity"`
}
