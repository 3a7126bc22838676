package favorite

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Add_IsIdempotent(t *testing.T) {
	repo, mock := newMock(t)
	const insert = `INSERT INTO favorites (user_id,tour_id) VALUES ($1,$2) ON CONFLICT (user_id, tour_id) DO NOTHING`

	mock.ExpectExec(regexp.QuoteMeta(insert)).WithArgs(int64(1), int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(insert)).WithArgs(int64(1), int64(2)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Add(context.Background(), 1, 2))
	require.NoError(t, repo.Add(context.Background(), 1, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Remove_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM favorites WHERE tour_id = $1 AND user_id = $2`)).
		WithArgs(int64(2), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Remove(context.Background(), 1, 2), ErrFavoriteNotFound)
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM favorites WHERE user_id = $1 ORDER BY added_at DESC, tour_id ASC`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "tour_id", "added_at"}).AddRow(1, 5, now).AddRow(1, 3, now.Add(-time.Hour)))

	favorites, err := repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, int64(5), favorites[0].TourID)
}
