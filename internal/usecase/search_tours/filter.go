package search_tours

import (
	"sort"
	"strings"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

// Predicate условие отбора тура
type Predicate func(t *domain.Tour) bool

// BuildPredicates собирает список условий по заданным критериям.
// Каждая заданная ось даёт одно условие, все условия объединяются через AND.
func BuildPredicates(c domain.TourCriteria, today types.Date) []Predicate {
	predicates := make([]Predicate, 0, 8)

	if c.OnlyBookable {
		predicates = append(predicates, func(t *domain.Tour) bool {
			return t.IsBookable(today)
		})
	}

	if text := strings.TrimSpace(c.FreeText); text != "" {
		needle := strings.ToLower(text)
		predicates = append(predicates, func(t *domain.Tour) bool {
			for _, field := range []string{t.Title, t.Description, t.CountryName, t.CityName, t.HotelName} {
				if strings.Contains(strings.ToLower(field), needle) {
					return true
				}
			}
			return false
		})
	}

	if c.CountryID != nil {
		id := *c.CountryID
		predicates = append(predicates, func(t *domain.Tour) bool {
			return t.CountryID != nil && *t.CountryID == id
		})
	}

	if c.CityID != nil {
		id := *c.CityID
		predicates = append(predicates, func(t *domain.Tour) bool {
			return t.CityID != nil && *t.CityID == id
		})
	}

	if c.StartDateFloor != nil {
		floor := *c.StartDateFloor
		predicates = append(predicates, func(t *domain.Tour) bool {
			return !t.StartDate.Before(floor)
		})
	}

	if c.EndDateCeiling != nil {
		ceiling := *c.EndDateCeiling
		predicates = append(predicates, func(t *domain.Tour) bool {
			return !t.EndDate.After(ceiling)
		})
	}

	if c.MinPrice != nil {
		minPrice := *c.MinPrice
		predicates = append(predicates, func(t *domain.Tour) bool {
			return t.Price.GreaterThanOrEqual(minPrice)
		})
	}

	if c.MaxPrice != nil {
		maxPrice := *c.MaxPrice
		predicates = append(predicates, func(t *domain.Tour) bool {
			return t.Price.LessThanOrEqual(maxPrice)
		})
	}

	if c.Category != nil {
		category := *c.Category
		predicates = append(predicates, func(t *domain.Tour) bool {
			return t.Category == category
		})
	}

	return predicates
}

// FilterTours отбирает туры по критериям и сортирует их по цене, дате начала и ID.
// Входной слайс не изменяется.
func FilterTours(tours []*domain.Tour, c domain.TourCriteria, today types.Date) []*domain.Tour {
	predicates := BuildPredicates(c, today)

	result := make([]*domain.Tour, 0, len(tours))
	for _, t := range tours {
		if matchAll(t, predicates) {
			result = append(result, t)
		}
	}

	SortTours(result)
	return result
}

// SortTours сортирует по возрастанию цены, затем даты начала, затем ID
func SortTours(tours []*domain.Tour) {
	sort.SliceStable(tours, func(i, j int) bool {
		a, b := tours[i], tours[j]
		if cmp := a.Price.Cmp(b.Price); cmp != 0 {
			return cmp < 0
		}
		if cmp := a.StartDate.Compare(b.StartDate); cmp != 0 {
			return cmp < 0
		}
		return a.ID < b.ID
	})
}

func matchAll(t *domain.Tour, predicates []Predicate) bool {
	for _, p := range predicates {
		if !p(t) {
			return false
		}
	}
	return true
}
