package tour

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с турами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория туров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// tourSelect базовый запрос с денормализованными названиями страны, города и отеля
func tourSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"t.id",
		"t.title",
		"t.country_id",
		"t.city_id",
		"t.hotel_id",
		"t.price",
		"t.start_date",
		"t.end_date",
		"t.duration_days",
		"t.available_slots",
		"t.category",
		"t.description",
		"t.main_image_id",
		"COALESCE(c.name, '')",
		"COALESCE(ci.name, '')",
		"COALESCE(h.name, '')",
	).
		From("tours t").
		LeftJoin("countries c ON c.id = t.country_id").
		LeftJoin("cities ci ON ci.id = t.city_id").
		LeftJoin("hotels h ON h.id = t.hotel_id")
}

// ListTours возвращает все туры каталога (полный скан)
// Фильтрация и сортировка выполняются движком поиска
func (r *Repository) ListTours(ctx context.Context) ([]*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := tourSelect().OrderBy("t.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListTours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tours := make([]*domain.Tour, 0)
	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListTours - scan row: %v", ErrScanRow, err)
		}
		tours = append(tours, tour)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTours - rows error: %v", ErrScanRow, err)
	}

	return tours, nil
}

// GetByID получает тур по ID вместе с галереей изображений
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := tourSelect().Where(squirrel.Eq{"t.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	tour, err := scanTour(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan tour: %v", ErrScanRow, err)
	}

	gallery, err := r.getGallery(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	tour.GalleryImageIDs = gallery

	return tour, nil
}

// Create сохраняет новый тур и его галерею
// Для атомарности вызывать внутри транзакции
func (r *Repository) Create(ctx context.Context, tour *domain.Tour) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tours").
		Columns(
			"title",
			"country_id",
			"city_id",
			"hotel_id",
			"price",
			"start_date",
			"end_date",
			"duration_days",
			"available_slots",
			"category",
			"description",
			"main_image_id",
		).
		Values(
			tour.Title,
			tour.CountryID,
			tour.CityID,
			tour.HotelID,
			tour.Price,
			tour.StartDate,
			tour.EndDate,
			tour.DurationDays,
			tour.AvailableSlots,
			tour.Category,
			tour.Description,
			tour.MainImageID,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&tour.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	if len(tour.GalleryImageIDs) > 0 {
		insert := psqlbuilder.Insert("tour_images").Columns("tour_id", "image_id")
		for _, imageID := range tour.GalleryImageIDs {
			insert = insert.Values(tour.ID, imageID)
		}
		query, args, err = insert.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build gallery insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - insert gallery: %v", ErrExecQuery, err)
		}
	}

	return tour, nil
}

// DecrementSlots уменьшает число свободных мест одним условным UPDATE.
// Проверка вместимости и списание выполняются атомарно на стороне БД:
// при нехватке мест ни одна строка не обновляется и возвращается ErrNotEnoughSlots.
func (r *Repository) DecrementSlots(ctx context.Context, tourID int64, count int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tours").
		Set("available_slots", squirrel.Expr("available_slots - ?", count)).
		Where(squirrel.Eq{"id": tourID}).
		Where(squirrel.GtOrEq{"available_slots": count}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DecrementSlots - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementSlots - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementSlots - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		exists, err := r.exists(ctx, executor, tourID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrTourNotFound
		}
		return ErrNotEnoughSlots
	}

	return nil
}

// IncrementSlots возвращает места в тур (отмена подтвержденного бронирования)
func (r *Repository) IncrementSlots(ctx context.Context, tourID int64, count int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tours").
		Set("available_slots", squirrel.Expr("available_slots + ?", count)).
		Where(squirrel.Eq{"id": tourID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: IncrementSlots - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementSlots - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementSlots - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTourNotFound
	}

	return nil
}

func (r *Repository) exists(ctx context.Context, executor DBExecutor, tourID int64) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("tours").
		Where(squirrel.Eq{"id": tourID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: exists - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

func (r *Repository) getGallery(ctx context.Context, executor DBExecutor, tourID int64) ([]int64, error) {
	query, args, err := psqlbuilder.Select("image_id").
		From("tour_images").
		Where(squirrel.Eq{"tour_id": tourID}).
		OrderBy("image_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getGallery - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getGallery - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: getGallery - scan image_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getGallery - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTour(row rowScanner) (*domain.Tour, error) {
	var tour domain.Tour

	err := row.Scan(
		&tour.ID,
		&tour.Title,
		&tour.CountryID,
		&tour.CityID,
		&tour.HotelID,
		&tour.Price,
		&tour.StartDate,
		&tour.EndDate,
		&tour.DurationDays,
		&tour.AvailableSlots,
		&tour.Category,
		&tour.Description,
		&tour.MainImageID,
		&tour.CountryName,
		&tour.CityName,
		&tour.HotelName,
	)
	if err != nil {
		return nil, err
	}

	return &tour, nil
}
