package domain

import "github.com/m04kA/SMC-TourService/pkg/types"

// Promotion represents a time-boxed marketing campaign
type Promotion struct {
	ID          int64
	Title       string
	Description string
	StartDate   types.Date
	EndDate     types.Date
	TourIDs     []int64
	CountryIDs  []int64
}

// IsActive returns true if today falls within the campaign dates, both ends inclusive
func (p *Promotion) IsActive(today types.Date) bool {
	return !today.Before(p.StartDate) && !today.After(p.EndDate)
}
