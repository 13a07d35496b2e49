package integration

import (
	"context"
	"fmt"
	"sync"

	"github.com/mikolimka20-hash/starsmarket.io/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Gift Repo ---

type inMemoryGiftRepo struct {
	mu    sync.RWMutex
	gifts map[string]*domain.Gift
}

func newInMemoryGiftRepo() *inMemoryGiftRepo {
	return &inMemoryGiftRepo{gifts: make(map[string]*domain.Gift)}
}

func (r *inMemoryGiftRepo) Create(ctx context.Context, g *domain.Gift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *g
	r.gifts[g.ID] = &cp
	return nil
}

func (r *inMemoryGiftRepo) GetByID(ctx context.Context, id string) (*domain.Gift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.gifts[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *inMemoryGiftRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Gift, error) {
	return r.GetByID(ctx, id)
}

// MarkSold mirrors the conditional UPDATE: the check and the write happen
// under one lock, so concurrent settlements collapse to a single winner.
func (r *inMemoryGiftRepo) MarkSold(ctx context.Context, tx pgx.Tx, id string, buyerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.gifts[id]
	if !ok || g.Sold {
		return false, nil
	}
	g.Sold = true
	g.ForSale = false
	g.OwnerID = buyerID
	return true, nil
}

func (r *inMemoryGiftRepo) UpdateListing(ctx context.Context, id string, forSale bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.gifts[id]
	if !ok {
		return fmt.Errorf("gift not found")
	}
	g.ForSale = forSale
	return nil
}

func (r *inMemoryGiftRepo) ListForSale(ctx context.Context) ([]domain.Gift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Gift
	for _, g := range r.gifts {
		if g.ForSale && !g.Sold {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *inMemoryGiftRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Gift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Gift
	for _, g := range r.gifts {
		if g.OwnerID == ownerID {
			out = append(out, *g)
		}
	}
	return out, nil
}

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[string]*domain.User)}
}

func (r *inMemoryUserRepo) Upsert(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.users[u.ID]; ok {
		existing.ChatID = u.ChatID
		existing.DisplayName = u.DisplayName
		existing.AvatarURL = u.AvatarURL
		existing.UpdatedAt = u.UpdatedAt
		return nil
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryUserRepo) CreditStars(ctx context.Context, tx pgx.Tx, id string, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user not found")
	}
	u.StarBalance += amount
	return nil
}

// --- In-Memory Purchase Repo ---

type inMemoryPurchaseRepo struct {
	mu        sync.RWMutex
	purchases []domain.Purchase
}

func newInMemoryPurchaseRepo() *inMemoryPurchaseRepo {
	return &inMemoryPurchaseRepo{}
}

func (r *inMemoryPurchaseRepo) Append(ctx context.Context, tx pgx.Tx, p *domain.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purchases = append(r.purchases, *p)
	return nil
}

func (r *inMemoryPurchaseRepo) GetByGiftID(ctx context.Context, giftID string) (*domain.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.purchases {
		if r.purchases[i].GiftID == giftID {
			cp := r.purchases[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryPurchaseRepo) ListByBuyer(ctx context.Context, buyerID string) ([]domain.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Purchase
	for _, p := range r.purchases {
		if p.BuyerID == buyerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *inMemoryPurchaseRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.purchases)
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
