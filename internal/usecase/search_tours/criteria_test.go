package search_tours

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

func TestParseCriteria_AllAndBlankAreNoOps(t *testing.T) {
	criteria, warnings := ParseCriteria(&Request{
		Query:     "  ",
		CountryID: "all",
		CityID:    "",
		Category:  "ALL",
	})

	assert.Empty(t, warnings)
	assert.Empty(t, criteria.FreeText)
	assert.Nil(t, criteria.CountryID)
	assert.Nil(t, criteria.CityID)
	assert.Nil(t, criteria.Category)
}

func TestParseCriteria_ValidValues(t *testing.T) {
	criteria, warnings := ParseCriteria(&Request{
		Query:        " Rome ",
		CountryID:    "1",
		CityID:       "10",
		StartDate:    "2026-11-01",
		EndDate:      "2026-11-30",
		MinPrice:     "1000",
		MaxPrice:     "2000,50",
		Category:     "beach",
		OnlyBookable: true,
	})

	require.Empty(t, warnings)
	assert.Equal(t, "Rome", criteria.FreeText)
	assert.Equal(t, int64(1), *criteria.CountryID)
	assert.Equal(t, int64(10), *criteria.CityID)
	assert.Equal(t, "2026-11-01", criteria.StartDateFloor.String())
	assert.Equal(t, "2026-11-30", criteria.EndDateCeiling.String())
	assert.Equal(t, "1000", criteria.MinPrice.String())
	assert.Equal(t, "2000.5", criteria.MaxPrice.String())
	assert.Equal(t, domain.CategoryBeach, *criteria.Category)
	assert.True(t, criteria.OnlyBookable)
}

func TestParseCriteria_MalformedValuesBecomeWarnings(t *testing.T) {
	criteria, warnings := ParseCriteria(&Request{
		CountryID: "Italy",
		CityID:    "-3",
		StartDate: "01.11.2026",
		EndDate:   "soon",
		MinPrice:  "abc",
		MaxPrice:  "-5",
		Category:  "space",
	})

	assert.Nil(t, criteria.CountryID)
	assert.Nil(t, criteria.CityID)
	assert.Nil(t, criteria.StartDateFloor)
	assert.Nil(t, criteria.EndDateCeiling)
	assert.Nil(t, criteria.MinPrice)
	assert.Nil(t, criteria.MaxPrice)
	assert.Nil(t, criteria.Category)

	fields := make([]string, 0, len(warnings))
	for _, w := range warnings {
		fields = append(fields, w.Field)
	}
	assert.Equal(t, []string{"country", "city", "start_date", "end_date", "min_price", "max_price", "tour_type"}, fields)
	assert.Contains(t, warnings[0].Error(), `country="Italy" ignored`)
}

func TestParsePrice(t *testing.T) {
	p, err := parsePrice("1499,50")
	require.NoError(t, err)
	assert.Equal(t, "1499.5", p.String())

	_, err = parsePrice("abc")
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = parsePrice("-5")
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestParseCriteria_PriceWarningReasons(t *testing.T) {
	_, warnings := ParseCriteria(&Request{MinPrice: "abc", MaxPrice: "-5"})

	require.Len(t, warnings, 2)
	assert.Equal(t, "must be a decimal number", warnings[0].Reason)
	assert.Equal(t, "must not be negative", warnings[1].Reason)
}
