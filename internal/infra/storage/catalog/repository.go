package catalog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourService/pkg/psqlbuilder"
)

// Repository справочники каталога: страны, города, отели, изображения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// selectInto выполняет запрос и раскладывает строки в dest через sqlx.StructScan
func (r *Repository) selectInto(ctx context.Context, op string, builder squirrel.Sqlizer, dest interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	if err := sqlx.StructScan(rows, dest); err != nil {
		return fmt.Errorf("%w: %s - struct scan: %v", ErrScanRow, op, err)
	}

	return nil
}

// ListCountries все страны по алфавиту
func (r *Repository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	var rows []countryRow
	builder := psqlbuilder.Select("id", "name").From("countries").OrderBy("name ASC")
	if err := r.selectInto(ctx, "ListCountries", builder, &rows); err != nil {
		return nil, err
	}

	countries := make([]domain.Country, 0, len(rows))
	for _, row := range rows {
		countries = append(countries, row.toDomain())
	}
	return countries, nil
}

// ListCities все города, отсортированные по названию
func (r *Repository) ListCities(ctx context.Context) ([]domain.City, error) {
	var rows []cityRow
	builder := psqlbuilder.Select("id", "name", "country_id").From("cities").OrderBy("name ASC", "id ASC")
	if err := r.selectInto(ctx, "ListCities", builder, &rows); err != nil {
		return nil, err
	}

	cities := make([]domain.City, 0, len(rows))
	for _, row := range rows {
		cities = append(cities, row.toDomain())
	}
	return cities, nil
}

// GetHotelByID получает отель с названиями страны и города и списком изображений
func (r *Repository) GetHotelByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var rows []hotelRow
	builder := psqlbuilder.Select(
		"h.id",
		"h.name",
		"h.stars",
		"h.address",
		"h.description",
		"h.country_id",
		"h.city_id",
		"COALESCE(c.name, '') AS country_name",
		"COALESCE(ci.name, '') AS city_name",
	).
		From("hotels h").
		LeftJoin("countries c ON c.id = h.country_id").
		LeftJoin("cities ci ON ci.id = h.city_id").
		Where(squirrel.Eq{"h.id": id})

	if err := r.selectInto(ctx, "GetHotelByID", builder, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrHotelNotFound
	}

	hotel := rows[0].toDomain()

	images, err := r.ListHotelImages(ctx, id)
	if err != nil {
		return nil, err
	}
	hotel.ImageIDs = make([]int64, 0, len(images))
	for _, img := range images {
		hotel.ImageIDs = append(hotel.ImageIDs, img.ID)
	}

	return hotel, nil
}

// ListHotelImages изображения отеля
func (r *Repository) ListHotelImages(ctx context.Context, hotelID int64) ([]domain.Image, error) {
	var rows []imageRow
	builder := psqlbuilder.Select("i.id", "i.file", "i.caption").
		From("images i").
		Join("hotel_images hi ON hi.image_id = i.id").
		Where(squirrel.Eq{"hi.hotel_id": hotelID}).
		OrderBy("i.id ASC")

	if err := r.selectInto(ctx, "ListHotelImages", builder, &rows); err != nil {
		return nil, err
	}

	images := make([]domain.Image, 0, len(rows))
	for _, row := range rows {
		images = append(images, row.toDomain())
	}
	return images, nil
}

// GetImagesByIDs изображения по списку ID (главное фото и галерея тура)
func (r *Repository) GetImagesByIDs(ctx context.Context, ids []int64) ([]domain.Image, error) {
	if len(ids) == 0 {
		return []domain.Image{}, nil
	}

	var rows []imageRow
	builder := psqlbuilder.Select("id", "file", "caption").
		From("images").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC")

	if err := r.selectInto(ctx, "GetImagesByIDs", builder, &rows); err != nil {
		return nil, err
	}

	images := make([]domain.Image, 0, len(rows))
	for _, row := range rows {
		images = append(images, row.toDomain())
	}
	return images, nil
}

// CreateCountry создает страну
func (r *Repository) CreateCountry(ctx context.Context, name string) (int64, error) {
	return r.insertReturningID(ctx, "CreateCountry",
		psqlbuilder.Insert("countries").Columns("name").Values(name))
}

// CreateCity создает город в стране
func (r *Repository) CreateCity(ctx context.Context, name string, countryID int64) (int64, error) {
	return r.insertReturningID(ctx, "CreateCity",
		psqlbuilder.Insert("cities").Columns("name", "country_id").Values(name, countryID))
}

// CreateHotel создает отель
func (r *Repository) CreateHotel(ctx context.Context, hotel *domain.Hotel) (int64, error) {
	return r.insertReturningID(ctx, "CreateHotel",
		psqlbuilder.Insert("hotels").
			Columns("name", "stars", "address", "description", "country_id", "city_id").
			Values(hotel.Name, hotel.Stars, hotel.Address, hotel.Description, hotel.CountryID, hotel.CityID))
}

// CreateImage сохраняет ссылку на файл изображения
func (r *Repository) CreateImage(ctx context.Context, image domain.Image) (int64, error) {
	return r.insertReturningID(ctx, "CreateImage",
		psqlbuilder.Insert("images").Columns("file", "caption").Values(image.File, image.Caption))
}

func (r *Repository) insertReturningID(ctx context.Context, op string, builder squirrel.InsertBuilder) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build insert query: %v", ErrBuildQuery, op, err)
	}

	var id int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: %s - execute insert: %v", ErrExecQuery, op, err)
	}

	return id, nil
}
