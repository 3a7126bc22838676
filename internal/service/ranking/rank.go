package ranking

import (
	"sort"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

// FeaturedTour тур с количеством бронирований
type FeaturedTour struct {
	Tour         *domain.Tour
	BookingCount int
}

// SelectFeatured выбирает популярные туры среди доступных для бронирования:
// по убыванию числа бронирований, затем по убыванию даты начала, затем по ID.
// Если доступных туров нет, возвращает n туров с самой поздней датой начала.
func SelectFeatured(tours []*domain.Tour, counts map[int64]int, n int, today types.Date) []FeaturedTour {
	if n <= 0 {
		return []FeaturedTour{}
	}

	candidates := make([]FeaturedTour, 0, len(tours))
	for _, t := range tours {
		if t.IsBookable(today) {
			candidates = append(candidates, FeaturedTour{Tour: t, BookingCount: counts[t.ID]})
		}
	}

	if len(candidates) == 0 {
		for _, t := range tours {
			candidates = append(candidates, FeaturedTour{Tour: t, BookingCount: counts[t.ID]})
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return newerFirst(candidates[i].Tour, candidates[j].Tour)
		})
		return truncate(candidates, n)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.BookingCount != b.BookingCount {
			return a.BookingCount > b.BookingCount
		}
		return newerFirst(a.Tour, b.Tour)
	})

	return truncate(candidates, n)
}

// SelectActivePromotions действующие сегодня акции, сначала начавшиеся позже
func SelectActivePromotions(promotions []*domain.Promotion, n int, today types.Date) []*domain.Promotion {
	active := make([]*domain.Promotion, 0, len(promotions))
	for _, p := range promotions {
		if p.IsActive(today) {
			active = append(active, p)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		a, b := active[i], active[j]
		if cmp := a.StartDate.Compare(b.StartDate); cmp != 0 {
			return cmp > 0
		}
		return a.ID < b.ID
	})

	if n >= 0 && len(active) > n {
		active = active[:n]
	}
	return active
}

func newerFirst(a, b *domain.Tour) bool {
	if cmp := a.StartDate.Compare(b.StartDate); cmp != 0 {
		return cmp > 0
	}
	return a.ID < b.ID
}

func truncate(items []FeaturedTour, n int) []FeaturedTour {
	if len(items) > n {
		return items[:n]
	}
	return items
}
