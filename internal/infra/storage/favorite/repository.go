package favorite

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourService/pkg/psqlbuilder"
)

// Repository репозиторий избранных туров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория избранного
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Add добавляет тур в избранное; повторное добавление ничего не меняет
func (r *Repository) Add(ctx context.Context, userID, tourID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("favorites").
		Columns("user_id", "tour_id").
		Values(userID, tourID).
		Suffix("ON CONFLICT (user_id, tour_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Add - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Remove удаляет тур из избранного
func (r *Repository) Remove(ctx context.Context, userID, tourID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("favorites").
		Where(squirrel.Eq{"user_id": userID, "tour_id": tourID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Remove - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

// ListByUser избранное пользователя, сначала недавно добавленные
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.Favorite, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("user_id", "tour_id", "added_at").
		From("favorites").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("added_at DESC", "tour_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	favorites := make([]*domain.Favorite, 0)
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.UserID, &f.TourID, &f.AddedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan row: %v", ErrScanRow, err)
		}
		favorites = append(favorites, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %v", ErrScanRow, err)
	}

	return favorites, nil
}
