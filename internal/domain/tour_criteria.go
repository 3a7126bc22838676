package domain

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourService/pkg/types"
)

// TourCriteria набор необязательных условий поиска туров
// nil / пустое значение означает отсутствие ограничения по оси
type TourCriteria struct {
	FreeText       string
	CountryID      *int64
	CityID         *int64
	StartDateFloor *types.Date // start_date >= floor
	EndDateCeiling *types.Date // end_date <= ceiling
	MinPrice       *decimal.Decimal
	MaxPrice       *decimal.Decimal
	Category       *TourCategory
	OnlyBookable   bool // true для публичного поиска, false для админского списка
}
