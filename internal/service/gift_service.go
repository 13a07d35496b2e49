package service

import (
	"context"
	"time"

	"github.com/mikolimka20-hash/starsmarket.io/internal/core/domain"
	"github.com/mikolimka20-hash/starsmarket.io/internal/core/ports"
	"github.com/mikolimka20-hash/starsmarket.io/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// GiftServiceImpl implements ports.GiftService.
type GiftServiceImpl struct {
	giftRepo ports.GiftRepository
	log      zerolog.Logger
}

// NewGiftService creates a new GiftServiceImpl.
func NewGiftService(giftRepo ports.GiftRepository, log zerolog.Logger) *GiftServiceImpl {
	return &GiftServiceImpl{giftRepo: giftRepo, log: log}
}

// CreateGift mints a new gift owned by the caller. Gifts start unlisted.
func (s *GiftServiceImpl) CreateGift(ctx context.Context, req ports.CreateGiftRequest) (*domain.Gift, error) {
	if req.PriceInStars <= 0 {
		return nil, apperror.ErrInvalidPrice()
	}
	// Owner ids are embedded into invoice payloads; a separator in the id
	// would make payload parsing ambiguous.
	if !domain.PayloadSafeID(req.OwnerID) {
		return nil, apperror.Validation("owner id contains the payload separator")
	}
	if req.Name == "" {
		return nil, apperror.Validation("gift name is required")
	}

	now := time.Now().UTC()
	gift := &domain.Gift{
		ID:           uuid.New().String(),
		OwnerID:      req.OwnerID,
		Name:         req.Name,
		Description:  req.Description,
		PriceInStars: req.PriceInStars,
		ForSale:      false,
		Sold:         false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.giftRepo.Create(ctx, gift); err != nil {
		return nil, apperror.InternalError(err)
	}

	s.log.Info().
		Str("gift_id", gift.ID).
		Str("owner_id", gift.OwnerID).
		Int64("price_in_stars", gift.PriceInStars).
		Msg("gift created")

	return gift, nil
}

// GetGift fetches a single gift.
func (s *GiftServiceImpl) GetGift(ctx context.Context, id string) (*domain.Gift, error) {
	gift, err := s.giftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if gift == nil {
		return nil, apperror.ErrGiftNotFound()
	}
	return gift, nil
}

// ListMarket returns all gifts currently for sale.
func (s *GiftServiceImpl) ListMarket(ctx context.Context) ([]domain.Gift, error) {
	gifts, err := s.giftRepo.ListForSale(ctx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return gifts, nil
}

// ListOwned returns all gifts owned by the given user.
func (s *GiftServiceImpl) ListOwned(ctx context.Context, ownerID string) ([]domain.Gift, error) {
	gifts, err := s.giftRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return gifts, nil
}

// SetListing puts a gift up for sale or withdraws it. Only the owner may
// change a listing; sold gifts can never be relisted.
func (s *GiftServiceImpl) SetListing(ctx context.Context, ownerID, giftID string, forSale bool) (*domain.Gift, error) {
	gift, err := s.giftRepo.GetByID(ctx, giftID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if gift == nil {
		return nil, apperror.ErrGiftNotFound()
	}
	if gift.OwnerID != ownerID {
		return nil, apperror.ErrNotGiftOwner()
	}
	if gift.Sold {
		return nil, apperror.ErrGiftAlreadySold()
	}

	if err := s.giftRepo.UpdateListing(ctx, giftID, forSale); err != nil {
		return nil, apperror.InternalError(err)
	}

	gift.ForSale = forSale
	gift.UpdatedAt = time.Now().UTC()

	s.log.Info().
		Str("gift_id", giftID).
		Bool("for_sale", forSale).
		Msg("gift listing updated")

	return gift, nil
}
