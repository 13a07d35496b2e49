package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikolimka20-hash/starsmarket.io/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Upsert inserts a user or refreshes profile fields on conflict. The star
// balance is never touched here; only settlement credits it.
func (r *UserRepo) Upsert(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, chat_id, display_name, avatar_url, star_balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			chat_id = EXCLUDED.chat_id,
			display_name = EXCLUDED.display_name,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		u.ID, u.ChatID, u.DisplayName, u.AvatarURL,
		u.StarBalance, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, chat_id, display_name, avatar_url, star_balance, created_at, updated_at
		FROM users WHERE id = $1`

	u := &domain.User{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.ChatID, &u.DisplayName, &u.AvatarURL,
		&u.StarBalance, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// CreditStars adds stars to a user's balance within a transaction. The
// increment is applied in SQL so concurrent settlements never lose an
// update.
func (r *UserRepo) CreditStars(ctx context.Context, tx pgx.Tx, id string, amount int64) error {
	query := `UPDATE users SET star_balance = star_balance + $2, updated_at = NOW() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, amount)
	if err != nil {
		return fmt.Errorf("credit stars: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", id)
	}
	return nil
}
