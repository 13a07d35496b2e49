package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikolimka20-hash/starsmarket.io/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PurchaseRepo implements ports.PurchaseRepository. Purchases are an
// append-only ledger; there are no updates or deletes.
type PurchaseRepo struct {
	pool Pool
}

// NewPurchaseRepo creates a new PurchaseRepo.
func NewPurchaseRepo(pool Pool) *PurchaseRepo {
	return &PurchaseRepo{pool: pool}
}

// Append records a completed purchase within a transaction.
func (r *PurchaseRepo) Append(ctx context.Context, tx pgx.Tx, p *domain.Purchase) error {
	query := `INSERT INTO purchases (id, gift_id, buyer_id, seller_id, amount_in_currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.GiftID, p.BuyerID, p.SellerID, p.AmountInCurrency, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append purchase: %w", err)
	}
	return nil
}

// GetByGiftID fetches the purchase record for a gift, if it was ever sold.
func (r *PurchaseRepo) GetByGiftID(ctx context.Context, giftID string) (*domain.Purchase, error) {
	query := `SELECT id, gift_id, buyer_id, seller_id, amount_in_currency, created_at
		FROM purchases WHERE gift_id = $1`

	p := &domain.Purchase{}
	err := r.pool.QueryRow(ctx, query, giftID).Scan(
		&p.ID, &p.GiftID, &p.BuyerID, &p.SellerID, &p.AmountInCurrency, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase by gift id: %w", err)
	}
	return p, nil
}

// ListByBuyer returns all purchases made by the given buyer, newest first.
func (r *PurchaseRepo) ListByBuyer(ctx context.Context, buyerID string) ([]domain.Purchase, error) {
	query := `SELECT id, gift_id, buyer_id, seller_id, amount_in_currency, created_at
		FROM purchases WHERE buyer_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, buyerID)
	if err != nil {
		return nil, fmt.Errorf("list purchases by buyer: %w", err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		p := domain.Purchase{}
		if err := rows.Scan(
			&p.ID, &p.GiftID, &p.BuyerID, &p.SellerID, &p.AmountInCurrency, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase row: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchase rows: %w", err)
	}
	return purchases, nil
}
