package search_tours

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

// ParseCriteria разбирает сырые параметры поиска.
// Некорректные значения не прерывают поиск: параметр пропускается,
// а причина попадает в список предупреждений.
func ParseCriteria(req *Request) (domain.TourCriteria, []ValidationError) {
	var (
		criteria = domain.TourCriteria{OnlyBookable: req.OnlyBookable}
		warnings []ValidationError
	)

	warn := func(field, value, reason string) {
		warnings = append(warnings, ValidationError{Field: field, Value: value, Reason: reason})
	}

	criteria.FreeText = strings.TrimSpace(req.Query)
	if len(criteria.FreeText) > domain.MaxSearchQueryLength {
		warn("q", criteria.FreeText, "query is too long")
		criteria.FreeText = ""
	}

	if value, ok := present(req.CountryID); ok {
		if id, err := parseID(value); err != nil {
			warn("country", value, "must be a positive integer")
		} else {
			criteria.CountryID = &id
		}
	}

	if value, ok := present(req.CityID); ok {
		if id, err := parseID(value); err != nil {
			warn("city", value, "must be a positive integer")
		} else {
			criteria.CityID = &id
		}
	}

	if value, ok := present(req.StartDate); ok {
		if d, err := types.ParseDate(value); err != nil {
			warn("start_date", value, "expected YYYY-MM-DD")
		} else {
			criteria.StartDateFloor = &d
		}
	}

	if value, ok := present(req.EndDate); ok {
		if d, err := types.ParseDate(value); err != nil {
			warn("end_date", value, "expected YYYY-MM-DD")
		} else {
			criteria.EndDateCeiling = &d
		}
	}

	if value, ok := present(req.MinPrice); ok {
		if p, err := parsePrice(value); err != nil {
			warn("min_price", value, priceReason(err))
		} else {
			criteria.MinPrice = &p
		}
	}

	if value, ok := present(req.MaxPrice); ok {
		if p, err := parsePrice(value); err != nil {
			warn("max_price", value, priceReason(err))
		} else {
			criteria.MaxPrice = &p
		}
	}

	if value, ok := present(req.Category); ok {
		if c, known := domain.ParseTourCategory(value); !known {
			warn("tour_type", value, "unknown category")
		} else {
			criteria.Category = &c
		}
	}

	return criteria, warnings
}

// present возвращает значение без пробелов и false, если фильтр не задан
func present(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if value == "" || strings.EqualFold(value, domain.FilterAll) {
		return "", false
	}
	return value, true
}

func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

func parsePrice(value string) (decimal.Decimal, error) {
	p, err := decimal.NewFromString(strings.ReplaceAll(value, ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}
	if p.IsNegative() {
		return decimal.Zero, ErrNegativePrice
	}
	return p, nil
}

// priceReason текст предупреждения для клиента
func priceReason(err error) string {
	if errors.Is(err, ErrNegativePrice) {
		return "must not be negative"
	}
	return "must be a decimal number"
}
