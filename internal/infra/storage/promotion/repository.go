package promotion

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourService/pkg/psqlbuilder"
)

// Repository репозиторий акций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория акций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAll все акции, сначала с самой поздней датой начала
// Отбор активных на сегодня выполняет сервис ранжирования
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "title", "description", "start_date", "end_date", "tour_ids", "country_ids").
		From("promotions").
		OrderBy("start_date DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	promotions := make([]*domain.Promotion, 0)
	for rows.Next() {
		var p domain.Promotion
		var tourIDs, countryIDs pq.Int64Array

		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.StartDate, &p.EndDate, &tourIDs, &countryIDs); err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}

		p.TourIDs = []int64(tourIDs)
		p.CountryIDs = []int64(countryIDs)
		promotions = append(promotions, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return promotions, nil
}

// Create сохраняет акцию
func (r *Repository) Create(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// nil массив pq кодирует как NULL, а колонки NOT NULL
	if p.TourIDs == nil {
		p.TourIDs = []int64{}
	}
	if p.CountryIDs == nil {
		p.CountryIDs = []int64{}
	}

	query, args, err := psqlbuilder.Insert("promotions").
		Columns("title", "description", "start_date", "end_date", "tour_ids", "country_ids").
		Values(p.Title, p.Description, p.StartDate, p.EndDate, pq.Array(p.TourIDs), pq.Array(p.CountryIDs)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return p, nil
}
