package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

var today = types.MustParseDate("2026-10-19")

func tour(id int64, start, end string, slots int) *domain.Tour {
	return &domain.Tour{
		ID:             id,
		StartDate:      types.MustParseDate(start),
		EndDate:        types.MustParseDate(end),
		AvailableSlots: slots,
	}
}

func featuredIDs(items []FeaturedTour) []int64 {
	out := make([]int64, 0, len(items))
	for _, f := range items {
		out = append(out, f.Tour.ID)
	}
	return out
}

func TestSelectFeatured_OrdersByBookingsThenNewest(t *testing.T) {
	tours := []*domain.Tour{
		tour(1, "2026-11-01", "2026-11-05", 3),
		tour(2, "2026-12-01", "2026-12-05", 3),
		tour(3, "2026-11-15", "2026-11-20", 3),
		tour(4, "2026-12-01", "2026-12-05", 3),
		tour(5, "2026-10-01", "2026-10-05", 3), // ended
		tour(6, "2026-11-01", "2026-11-05", 0), // sold out
	}
	counts := map[int64]int{1: 4, 3: 4, 5: 10, 6: 9, 2: 1}

	result := SelectFeatured(tours, counts, 5, today)

	assert.Equal(t, []int64{3, 1, 2, 4}, featuredIDs(result))
	assert.Equal(t, 4, result[0].BookingCount)
	assert.Equal(t, 0, result[3].BookingCount)
}

func TestSelectFeatured_Truncates(t *testing.T) {
	tours := []*domain.Tour{
		tour(1, "2026-11-01", "2026-11-05", 3),
		tour(2, "2026-11-02", "2026-11-05", 3),
		tour(3, "2026-11-03", "2026-11-05", 3),
	}

	assert.Equal(t, []int64{3, 2}, featuredIDs(SelectFeatured(tours, nil, 2, today)))
	assert.Empty(t, SelectFeatured(tours, nil, 0, today))
}

func TestSelectFeatured_FallbackWhenNothingBookable(t *testing.T) {
	tours := []*domain.Tour{
		tour(1, "2026-09-01", "2026-09-05", 3),
		tour(2, "2026-10-01", "2026-10-05", 3),
		tour(3, "2026-11-01", "2026-11-05", 0),
		tour(4, "2026-10-01", "2026-10-05", 0),
	}
	counts := map[int64]int{1: 50}

	result := SelectFeatured(tours, counts, 3, today)

	assert.Equal(t, []int64{3, 2, 4}, featuredIDs(result))
}

func TestSelectFeatured_EmptyCatalog(t *testing.T) {
	assert.Empty(t, SelectFeatured(nil, nil, 5, today))
}

func TestSelectActivePromotions(t *testing.T) {
	promo := func(id int64, start, end string) *domain.Promotion {
		return &domain.Promotion{ID: id, StartDate: types.MustParseDate(start), EndDate: types.MustParseDate(end)}
	}
	promotions := []*domain.Promotion{
		promo(1, "2026-10-01", "2026-10-31"),
		promo(2, "2026-10-19", "2026-10-19"),
		promo(3, "2026-10-20", "2026-11-30"), // not started yet
		promo(4, "2026-09-01", "2026-10-18"), // finished
		promo(5, "2026-10-10", "2026-12-31"),
		promo(6, "2026-10-10", "2026-10-25"),
	}

	result := SelectActivePromotions(promotions, 3, today)

	ids := make([]int64, 0, len(result))
	for _, p := range result {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{2, 5, 6}, ids)
}
