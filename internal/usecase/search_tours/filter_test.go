package search_tours

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/ptr"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

const (
	italyID  int64 = 1
	franceID int64 = 2
	romeID   int64 = 10
	parisID  int64 = 20
)

var today = types.MustParseDate("2026-10-19")

func newTour(id int64, price, start, end string, slots int, countryID int64) *domain.Tour {
	t := &domain.Tour{
		ID:             id,
		Title:          "Tour",
		Price:          decimal.RequireFromString(price),
		StartDate:      types.MustParseDate(start),
		EndDate:        types.MustParseDate(end),
		AvailableSlots: slots,
		Category:       domain.CategoryExcursion,
		CountryID:      ptr.Ptr(countryID),
	}
	switch countryID {
	case italyID:
		t.CountryName, t.CityName, t.CityID = "Italy", "Rome", ptr.Ptr(romeID)
	case franceID:
		t.CountryName, t.CityName, t.CityID = "France", "Paris", ptr.Ptr(parisID)
	}
	return t
}

func catalogFixture() []*domain.Tour {
	return []*domain.Tour{
		newTour(1, "1500", "2026-11-10", "2026-11-17", 5, italyID),
		newTour(2, "1500", "2026-11-01", "2026-11-08", 2, italyID),
		newTour(3, "999.99", "2026-11-01", "2026-11-08", 4, italyID),
		newTour(4, "2000", "2026-12-01", "2026-12-08", 0, italyID),  // no slots
		newTour(5, "1200", "2026-10-01", "2026-10-18", 3, italyID),  // ended yesterday
		newTour(6, "1800", "2026-11-05", "2026-11-12", 7, franceID), // other country
		newTour(7, "2000", "2026-10-19", "2026-10-19", 1, italyID),  // ends today
		newTour(8, "1500", "2026-11-01", "2026-11-08", 9, italyID),  // same price and date as 2
	}
}

func ids(tours []*domain.Tour) []int64 {
	out := make([]int64, 0, len(tours))
	for _, t := range tours {
		out = append(out, t.ID)
	}
	return out
}

func TestFilterTours_ItalyPriceRange(t *testing.T) {
	criteria := domain.TourCriteria{
		CountryID:    ptr.Ptr(italyID),
		MinPrice:     ptr.Ptr(decimal.NewFromInt(1000)),
		MaxPrice:     ptr.Ptr(decimal.NewFromInt(2000)),
		OnlyBookable: true,
	}

	result := FilterTours(catalogFixture(), criteria, today)

	// price asc, then start_date asc, then id asc
	assert.Equal(t, []int64{2, 8, 1, 7}, ids(result))
	for _, tour := range result {
		assert.Equal(t, italyID, *tour.CountryID)
		assert.True(t, tour.IsBookable(today))
	}
}

func TestFilterTours_EmptyCriteriaPublic(t *testing.T) {
	result := FilterTours(catalogFixture(), domain.TourCriteria{OnlyBookable: true}, today)
	assert.Equal(t, []int64{3, 2, 8, 1, 6, 7}, ids(result))
}

func TestFilterTours_AdminListingKeepsUnbookable(t *testing.T) {
	result := FilterTours(catalogFixture(), domain.TourCriteria{}, today)
	assert.Len(t, result, 8)
	assert.Contains(t, ids(result), int64(4))
	assert.Contains(t, ids(result), int64(5))
}

func TestFilterTours_FreeText(t *testing.T) {
	tours := catalogFixture()
	tours[0].Title = "Roman Holiday"
	tours[5].HotelName = "Hôtel du Louvre"

	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{"title case-insensitive", "roman", []int64{1}},
		{"hotel name", "LOUVRE", []int64{6}},
		{"country name", "france", []int64{6}},
		{"city name", "rome", []int64{3, 2, 8, 1, 7}},
		{"blank is no-op", "   ", []int64{3, 2, 8, 1, 6, 7}},
		{"no match", "antarctica", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterTours(tours, domain.TourCriteria{FreeText: tt.query, OnlyBookable: true}, today)
			assert.Equal(t, tt.want, ids(result))
		})
	}
}

func TestFilterTours_DateBoundsInclusive(t *testing.T) {
	criteria := domain.TourCriteria{
		StartDateFloor: ptr.Ptr(types.MustParseDate("2026-11-01")),
		EndDateCeiling: ptr.Ptr(types.MustParseDate("2026-11-08")),
	}

	result := FilterTours(catalogFixture(), criteria, today)
	assert.Equal(t, []int64{3, 2, 8}, ids(result))
}

func TestFilterTours_Category(t *testing.T) {
	tours := catalogFixture()
	tours[5].Category = domain.CategoryBeach

	result := FilterTours(tours, domain.TourCriteria{Category: ptr.Ptr(domain.CategoryBeach)}, today)
	assert.Equal(t, []int64{6}, ids(result))
}

func TestFilterTours_IsIdempotentAndPure(t *testing.T) {
	tours := catalogFixture()
	before := ids(tours)
	criteria := domain.TourCriteria{FreeText: "italy", OnlyBookable: true, MaxPrice: ptr.Ptr(decimal.NewFromInt(1600))}

	first := FilterTours(tours, criteria, today)
	second := FilterTours(tours, criteria, today)

	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, before, ids(tours))
}

func TestFilterTours_SubsetOfBookable(t *testing.T) {
	tours := catalogFixture()
	bookable := ids(FilterTours(tours, domain.TourCriteria{OnlyBookable: true}, today))

	criteria := []domain.TourCriteria{
		{OnlyBookable: true, CountryID: ptr.Ptr(franceID)},
		{OnlyBookable: true, CityID: ptr.Ptr(romeID), MinPrice: ptr.Ptr(decimal.NewFromInt(1500))},
		{OnlyBookable: true, FreeText: "tour"},
	}

	for _, c := range criteria {
		for _, id := range ids(FilterTours(tours, c, today)) {
			assert.Contains(t, bookable, id)
		}
	}
}

func TestFilterTours_FromParsedMalformedInput(t *testing.T) {
	criteria, warnings := ParseCriteria(&Request{
		MinPrice:     "cheap",
		MaxPrice:     "2000",
		StartDate:    "next week",
		CountryID:    "all",
		OnlyBookable: true,
	})
	require.Len(t, warnings, 2)

	result := FilterTours(catalogFixture(), criteria, today)
	assert.Equal(t, []int64{3, 2, 8, 1, 6, 7}, ids(result))
}
