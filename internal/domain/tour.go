package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourService/pkg/types"
)

// TourCategory represents the kind of a tour
type TourCategory string

const (
	CategoryBeach     TourCategory = "beach"
	CategoryExcursion TourCategory = "excursion"
	CategoryAdventure TourCategory = "adventure"
	CategorySki       TourCategory = "ski"
	CategoryCruise    TourCategory = "cruise"
	CategoryMedical   TourCategory = "medical"
	CategoryBusiness  TourCategory = "business"
	CategoryOther     TourCategory = "other"
)

// TourCategories lists every supported category in display order
var TourCategories = []TourCategory{
	CategoryBeach,
	CategoryExcursion,
	CategoryAdventure,
	CategorySki,
	CategoryCruise,
	CategoryMedical,
	CategoryBusiness,
	CategoryOther,
}

// ParseTourCategory converts a raw value into a known category
func ParseTourCategory(value string) (TourCategory, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, c := range TourCategories {
		if string(c) == value {
			return c, true
		}
	}
	return "", false
}

// Tour represents a sellable tour in the catalog
type Tour struct {
	ID              int64
	Title           string
	CountryID       *int64 // SET NULL when the country is deleted
	CityID          *int64 // SET NULL when the city is deleted
	HotelID         *int64
	Price           decimal.Decimal
	StartDate       types.Date
	EndDate         types.Date
	DurationDays    int
	AvailableSlots  int
	Category        TourCategory
	Description     string
	MainImageID     *int64
	GalleryImageIDs []int64

	// Denormalized names, joined by the store for text search and display
	CountryName string
	CityName    string
	HotelName   string
}

// IsBookable returns true if the tour has free slots and has not ended yet.
// Depends on the calendar date, so it is evaluated on every query and never stored.
func (t *Tour) IsBookable(today types.Date) bool {
	return t.AvailableSlots > 0 && !t.EndDate.Before(today)
}

// HasEnded returns true if the tour end date is in the past
func (t *Tour) HasEnded(today types.Date) bool {
	return t.EndDate.Before(today)
}

// CanHost returns true if the remaining slots cover the headcount
func (t *Tour) CanHost(headcount int) bool {
	return headcount >= MinHeadcount && headcount <= t.AvailableSlots
}

// TotalCost returns price multiplied by headcount
func (t *Tour) TotalCost(headcount int) decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(int64(headcount)))
}

// DurationBetween returns the number of days between start and end
func DurationBetween(start, end types.Date) int {
	return start.DaysUntil(end)
}

// Validate checks catalog invariants of a tour.
// A zero DurationDays is filled from the dates before checking.
func (t *Tour) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidTour)
	}
	if len(t.Title) > MaxTourTitleLength {
		return fmt.Errorf("%w: title is longer than %d", ErrInvalidTour, MaxTourTitleLength)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidTour)
	}
	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidTour)
	}
	if t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("%w: end date %s is before start date %s", ErrInvalidTour, t.EndDate, t.StartDate)
	}
	if t.DurationDays == 0 {
		t.DurationDays = DurationBetween(t.StartDate, t.EndDate)
	}
	if t.DurationDays != DurationBetween(t.StartDate, t.EndDate) {
		return fmt.Errorf("%w: duration %d does not match dates %s..%s", ErrInvalidTour, t.DurationDays, t.StartDate, t.EndDate)
	}
	if t.AvailableSlots < 0 {
		return fmt.Errorf("%w: available slots must not be negative", ErrInvalidTour)
	}
	if _, ok := ParseTourCategory(string(t.Category)); !ok {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidTour, t.Category)
	}
	return nil
}
