package review

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourService/pkg/psqlbuilder"
)

// Repository репозиторий отзывов о турах и отелях
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// targetCondition условие выборки по объекту отзыва
func targetCondition(target domain.ReviewTarget) squirrel.Eq {
	if target.Kind() == domain.ReviewTargetHotel {
		return squirrel.Eq{"hotel_id": target.ID()}
	}
	return squirrel.Eq{"tour_id": target.ID()}
}

// Create сохраняет отзыв
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("user_id", "tour_id", "hotel_id", "rating", "text").
		Values(review.UserID, review.Target.TourID(), review.Target.HotelID(), review.Rating, review.Text).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&review.ID, &review.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return review, nil
}

// ListByTarget отзывы об объекте, сначала новые
// limit <= 0 означает без ограничения
func (r *Repository) ListByTarget(ctx context.Context, target domain.ReviewTarget, limit int) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "user_id", "tour_id", "hotel_id", "rating", "text", "created_at").
		From("reviews").
		Where(targetCondition(target)).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(limit))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTarget - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTarget - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		var tourID, hotelID sql.NullInt64

		if err := rows.Scan(&review.ID, &review.UserID, &tourID, &hotelID, &review.Rating, &review.Text, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByTarget - scan row: %v", ErrScanRow, err)
		}

		review.Target, err = domain.NewReviewTarget(nullableID(tourID), nullableID(hotelID))
		if err != nil {
			return nil, fmt.Errorf("%w: ListByTarget - review %d", ErrInvalidTarget, review.ID)
		}

		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByTarget - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// RatingStats количество и сумма оценок объекта
func (r *Repository) RatingStats(ctx context.Context, target domain.ReviewTarget) (domain.RatingSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)", "COALESCE(SUM(rating), 0)").
		From("reviews").
		Where(targetCondition(target)).
		ToSql()
	if err != nil {
		return domain.RatingSummary{}, fmt.Errorf("%w: RatingStats - build select query: %v", ErrBuildQuery, err)
	}

	var summary domain.RatingSummary
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&summary.Count, &summary.Sum); err != nil {
		return domain.RatingSummary{}, fmt.Errorf("%w: RatingStats - scan: %v", ErrScanRow, err)
	}

	return summary, nil
}

func nullableID(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}
