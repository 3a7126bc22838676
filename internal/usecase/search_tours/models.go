package search_tours

import (
	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

// Request сырые параметры поиска, как они пришли из query string
// Пустая строка или "all" означают отсутствие фильтра
type Request struct {
	Query        string
	CountryID    string
	CityID       string
	StartDate    string // start_date >= StartDate
	EndDate      string // end_date <= EndDate
	MinPrice     string
	MaxPrice     string
	Category     string
	OnlyBookable bool
}

// Response результат поиска
type Response struct {
	Tours    []*domain.Tour
	Criteria domain.TourCriteria
	Warnings []ValidationError
	Today    types.Date
}
