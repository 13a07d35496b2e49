package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/mikolimka20-hash/starsmarket.io/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGift() *domain.Gift {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Gift{
		ID:           "4f9d6a1e-0b6e-4f2a-9f6c-1c2d3e4f5a6b",
		OwnerID:      "777000",
		Name:         "Golden Bear",
		Description:  "A shiny bear",
		PriceInStars: 10,
		ForSale:      true,
		Sold:         false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func giftColumnNames() []string {
	return []string{"id", "owner_id", "name", "description", "price_in_stars", "for_sale", "sold", "created_at", "updated_at"}
}

func giftRow(g *domain.Gift) *pgxmock.Rows {
	return pgxmock.NewRows(giftColumnNames()).AddRow(
		g.ID, g.OwnerID, g.Name, g.Description,
		g.PriceInStars, g.ForSale, g.Sold, g.CreatedAt, g.UpdatedAt,
	)
}

func TestGiftRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiftRepo(mock)
	g := newTestGift()

	mock.ExpectExec("INSERT INTO gifts").
		WithArgs(g.ID, g.OwnerID, g.Name, g.Description,
			g.PriceInStars, g.ForSale, g.Sold, g.CreatedAt, g.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), g)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiftRepo(mock)
	g := newTestGift()

	mock.ExpectQuery("SELECT (.+) FROM gifts WHERE id").
		WithArgs(g.ID).
		WillReturnRows(giftRow(g))

	got, err := repo.GetByID(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Equal(t, g, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiftRepo(mock)

	mock.ExpectQuery("SELECT (.+) FROM gifts WHERE id").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(giftColumnNames()))

	got, err := repo.GetByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiftRepo(mock)
	g := newTestGift()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM gifts WHERE id = (.+) FOR UPDATE").
		WithArgs(g.ID).
		WillReturnRows(giftRow(g))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	got, err := repo.GetByIDForUpdate(context.Background(), tx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, g, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftRepo_MarkSold_Applied(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiftRepo(mock)
	g := newTestGift()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE gifts SET sold = TRUE").
		WithArgs(g.ID, "999111").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	applied, err := repo.MarkSold(context.Background(), tx, g.ID, "999111")
	require.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftRepo_MarkSold_AlreadySold(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiftRepo(mock)
	g := newTestGift()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE gifts SET sold = TRUE").
		WithArgs(g.ID, "999111").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	applied, err := repo.MarkSold(context.Background(), tx, g.ID, "999111")
	require.NoError(t, err)
	assert.False(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftRepo_UpdateListing_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiftRepo(mock)

	mock.ExpectExec("UPDATE gifts SET for_sale").
		WithArgs("missing", true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateListing(context.Background(), "missing", true)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftRepo_ListForSale(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiftRepo(mock)
	g := newTestGift()

	mock.ExpectQuery("SELECT (.+) FROM gifts").
		WillReturnRows(giftRow(g))

	gifts, err := repo.ListForSale(context.Background())
	require.NoError(t, err)
	require.Len(t, gifts, 1)
	assert.Equal(t, *g, gifts[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftRepo_ListByOwner_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiftRepo(mock)

	mock.ExpectQuery("SELECT (.+) FROM gifts").
		WithArgs("777000").
		WillReturnRows(pgxmock.NewRows(giftColumnNames()))

	gifts, err := repo.ListByOwner(context.Background(), "777000")
	assert.NoError(t, err)
	assert.Empty(t, gifts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
