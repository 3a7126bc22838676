package catalog

import (
	"database/sql"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

type countryRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (r countryRow) toDomain() domain.Country {
	return domain.Country{ID: r.ID, Name: r.Name}
}

type cityRow struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	CountryID int64  `db:"country_id"`
}

func (r cityRow) toDomain() domain.City {
	return domain.City{ID: r.ID, Name: r.Name, CountryID: r.CountryID}
}

type hotelRow struct {
	ID          int64         `db:"id"`
	Name        string        `db:"name"`
	Stars       int           `db:"stars"`
	Address     string        `db:"address"`
	Description string        `db:"description"`
	CountryID   sql.NullInt64 `db:"country_id"`
	CityID      sql.NullInt64 `db:"city_id"`
	CountryName string        `db:"country_name"`
	CityName    string        `db:"city_name"`
}

func (r hotelRow) toDomain() *domain.Hotel {
	hotel := &domain.Hotel{
		ID:          r.ID,
		Name:        r.Name,
		Stars:       r.Stars,
		Address:     r.Address,
		Description: r.Description,
		CountryName: r.CountryName,
		CityName:    r.CityName,
	}
	if r.CountryID.Valid {
		id := r.CountryID.Int64
		hotel.CountryID = &id
	}
	if r.CityID.Valid {
		id := r.CityID.Int64
		hotel.CityID = &id
	}
	return hotel
}

type imageRow struct {
	ID      int64  `db:"id"`
	File    string `db:"file"`
	Caption string `db:"caption"`
}

func (r imageRow) toDomain() domain.Image {
	return domain.Image{ID: r.ID, File: r.File, Caption: r.Caption}
}
