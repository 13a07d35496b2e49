package ports

import (
	"context"

	"github.com/mikolimka20-hash/starsmarket.io/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// GiftRepository defines persistence operations for gifts.
// Methods accepting pgx.Tx run inside the settlement transaction so the
// read-check-mutate sequence is serialized per gift row.
type GiftRepository interface {
	Create(ctx context.Context, gift *domain.Gift) error
	GetByID(ctx context.Context, id string) (*domain.Gift, error)
	// GetByIDForUpdate locks the gift row for the duration of the
	// transaction. Returns nil, nil when the gift does not exist.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Gift, error)
	// MarkSold applies the one-way sold transition and hands the gift to
	// its buyer. The update is conditional on sold = FALSE; it reports
	// whether the transition was applied.
	MarkSold(ctx context.Context, tx pgx.Tx, id string, buyerID string) (bool, error)
	UpdateListing(ctx context.Context, id string, forSale bool) error
	ListForSale(ctx context.Context) ([]domain.Gift, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Gift, error)
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Upsert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// CreditStars atomically increments a user's star balance inside the
	// settlement transaction.
	CreditStars(ctx context.Context, tx pgx.Tx, id string, amount int64) error
}

// PurchaseRepository defines persistence for the append-only purchase ledger.
type PurchaseRepository interface {
	Append(ctx context.Context, tx pgx.Tx, purchase *domain.Purchase) error
	GetByGiftID(ctx context.Context, giftID string) (*domain.Purchase, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]domain.Purchase, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
