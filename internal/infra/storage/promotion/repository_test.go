package promotion

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

func TestRepository_ListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, description, start_date, end_date, tour_ids, country_ids FROM promotions ORDER BY start_date DESC, id ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "start_date", "end_date", "tour_ids", "country_ids"}).
			AddRow(1, "Autumn sale", "", "2026-10-01", "2026-10-31", []byte("{1,2}"), []byte("{}")))

	promotions, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, promotions, 1)
	assert.Equal(t, []int64{1, 2}, promotions[0].TourIDs)
	assert.Empty(t, promotions[0].CountryIDs)
	assert.True(t, promotions[0].IsActive(types.MustParseDate("2026-10-19")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO promotions (title,description,start_date,end_date,tour_ids,country_ids) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`)).
		WithArgs("Autumn sale", "", types.MustParseDate("2026-10-01"), types.MustParseDate("2026-10-31"), "{1,2}", "{}").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	p, err := repo.Create(context.Background(), &domain.Promotion{
		Title:     "Autumn sale",
		StartDate: types.MustParseDate("2026-10-01"),
		EndDate:   types.MustParseDate("2026-10-31"),
		TourIDs:   []int64{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
