package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikolimka20-hash/starsmarket.io/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// GiftRepo implements ports.GiftRepository.
type GiftRepo struct {
	pool Pool
}

// NewGiftRepo creates a new GiftRepo.
func NewGiftRepo(pool Pool) *GiftRepo {
	return &GiftRepo{pool: pool}
}

const giftColumns = `id, owner_id, name, description, price_in_stars, for_sale, sold, created_at, updated_at`

func scanGift(row pgx.Row) (*domain.Gift, error) {
	g := &domain.Gift{}
	err := row.Scan(
		&g.ID, &g.OwnerID, &g.Name, &g.Description,
		&g.PriceInStars, &g.ForSale, &g.Sold, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Create inserts a new gift into the database.
func (r *GiftRepo) Create(ctx context.Context, g *domain.Gift) error {
	query := `INSERT INTO gifts (id, owner_id, name, description, price_in_stars, for_sale, sold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		g.ID, g.OwnerID, g.Name, g.Description,
		g.PriceInStars, g.ForSale, g.Sold, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert gift: %w", err)
	}
	return nil
}

// GetByID fetches a gift by id (without locking).
func (r *GiftRepo) GetByID(ctx context.Context, id string) (*domain.Gift, error) {
	query := `SELECT ` + giftColumns + ` FROM gifts WHERE id = $1`

	g, err := scanGift(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gift by id: %w", err)
	}
	return g, nil
}

// GetByIDForUpdate fetches a gift by id with pessimistic locking.
// This MUST be called within a transaction.
func (r *GiftRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Gift, error) {
	query := `SELECT ` + giftColumns + ` FROM gifts WHERE id = $1 FOR UPDATE`

	g, err := scanGift(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gift for update: %w", err)
	}
	return g, nil
}

// MarkSold atomically flips an unsold gift to sold and hands ownership to
// the buyer. Returns false when the gift was already sold, so concurrent
// settlements collapse to a single winner.
func (r *GiftRepo) MarkSold(ctx context.Context, tx pgx.Tx, id string, buyerID string) (bool, error) {
	query := `UPDATE gifts SET sold = TRUE, for_sale = FALSE, owner_id = $2, updated_at = NOW()
		WHERE id = $1 AND sold = FALSE`

	tag, err := tx.Exec(ctx, query, id, buyerID)
	if err != nil {
		return false, fmt.Errorf("mark gift sold: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateListing sets the for_sale flag on a gift.
func (r *GiftRepo) UpdateListing(ctx context.Context, id string, forSale bool) error {
	query := `UPDATE gifts SET for_sale = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, forSale)
	if err != nil {
		return fmt.Errorf("update gift listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("gift not found: %s", id)
	}
	return nil
}

// ListForSale returns all unsold gifts currently listed on the market.
func (r *GiftRepo) ListForSale(ctx context.Context) ([]domain.Gift, error) {
	query := `SELECT ` + giftColumns + ` FROM gifts
		WHERE for_sale = TRUE AND sold = FALSE ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list gifts for sale: %w", err)
	}
	defer rows.Close()

	return collectGifts(rows)
}

// ListByOwner returns all gifts owned by the given user.
func (r *GiftRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Gift, error) {
	query := `SELECT ` + giftColumns + ` FROM gifts
		WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list gifts by owner: %w", err)
	}
	defer rows.Close()

	return collectGifts(rows)
}

func collectGifts(rows pgx.Rows) ([]domain.Gift, error) {
	var gifts []domain.Gift
	for rows.Next() {
		g := domain.Gift{}
		if err := rows.Scan(
			&g.ID, &g.OwnerID, &g.Name, &g.Description,
			&g.PriceInStars, &g.ForSale, &g.Sold, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan gift row: %w", err)
		}
		gifts = append(gifts, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gift rows: %w", err)
	}
	return gifts, nil
}
