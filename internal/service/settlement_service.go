package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mikolimka20-hash/starsmarket.io/internal/core/domain"
	"github.com/mikolimka20-hash/starsmarket.io/internal/core/ports"
	"github.com/mikolimka20-hash/starsmarket.io/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const settledCacheTTL = 24 * time.Hour

// SettlementServiceImpl implements ports.SettlementService.
//
// Provider delivery is at-least-once, so the same confirmation may arrive
// any number of times and concurrently. Two idempotency layers absorb
// duplicates: a Redis fast path keyed by gift id, and the authoritative
// sold flag checked under a row lock. The sale transition, the seller
// credit and the ledger append commit as one database transaction.
type SettlementServiceImpl struct {
	giftRepo     ports.GiftRepository
	userRepo     ports.UserRepository
	purchaseRepo ports.PurchaseRepository
	transactor   ports.DBTransactor
	cache        ports.SettlementCache
	reservations ports.ReservationStore
	pricing      ports.PricingService
	tg           ports.TelegramClient
	log          zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	giftRepo ports.GiftRepository,
	userRepo ports.UserRepository,
	purchaseRepo ports.PurchaseRepository,
	transactor ports.DBTransactor,
	cache ports.SettlementCache,
	reservations ports.ReservationStore,
	pricing ports.PricingService,
	tg ports.TelegramClient,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		giftRepo:     giftRepo,
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
		transactor:   transactor,
		cache:        cache,
		reservations: reservations,
		pricing:      pricing,
		tg:           tg,
		log:          log,
	}
}

// HandlePaymentConfirmation applies the exactly-once sale transition for a
// provider payment confirmation. A nil return acknowledges the event; an
// error makes the webhook respond non-2xx so the provider redelivers.
func (s *SettlementServiceImpl) HandlePaymentConfirmation(ctx context.Context, event ports.PaymentConfirmation) error {
	giftID, buyerID, err := domain.ParseInvoicePayload(event.Payload)
	if err != nil {
		// Malformed payloads can never settle; ack so the provider stops
		// redelivering.
		s.log.Warn().Err(err).Str("payload", event.Payload).Msg("invalid confirmation payload, acknowledging without action")
		return nil
	}

	// Layer 1: Redis fast-path duplicate check. Errors fall through to
	// the authoritative DB check.
	settled, err := s.cache.IsSettled(ctx, giftID)
	if err != nil {
		s.log.Warn().Err(err).Str("gift_id", giftID).Msg("settlement cache check failed, falling through to DB")
	}
	if settled {
		s.log.Debug().Str("gift_id", giftID).Msg("duplicate confirmation absorbed by cache")
		return nil
	}

	// Layer 2: row-locked check-then-act inside one transaction.
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	gift, err := s.giftRepo.GetByIDForUpdate(ctx, dbTx, giftID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock gift: %w", err))
	}
	if gift == nil {
		// Unknown gift: already cleaned up or a bogus payload that parsed.
		// Nothing can be settled; safe no-op.
		s.log.Warn().Str("gift_id", giftID).Msg("confirmation for unknown gift, acknowledging without action")
		return nil
	}
	if gift.Sold {
		// Duplicate delivery or a lost race. Absorb silently.
		s.markSettled(ctx, giftID)
		s.log.Debug().Str("gift_id", giftID).Msg("gift already sold, duplicate confirmation absorbed")
		return nil
	}

	sellerID := gift.OwnerID

	applied, err := s.giftRepo.MarkSold(ctx, dbTx, giftID, buyerID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("mark sold: %w", err))
	}
	if !applied {
		// The conditional update found sold = TRUE despite the lock;
		// treat as a legitimate duplicate.
		return nil
	}

	if err := s.userRepo.CreditStars(ctx, dbTx, sellerID, gift.PriceInStars); err != nil {
		return apperror.InternalError(fmt.Errorf("credit seller: %w", err))
	}

	amount, err := s.pricing.PriceForStars(gift.PriceInStars)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("price gift: %w", err))
	}

	purchase := &domain.Purchase{
		ID:               uuid.New().String(),
		GiftID:           giftID,
		BuyerID:          buyerID,
		SellerID:         sellerID,
		AmountInCurrency: amount,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.purchaseRepo.Append(ctx, dbTx, purchase); err != nil {
		return apperror.InternalError(fmt.Errorf("append purchase: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit settlement: %w", err))
	}

	s.log.Info().
		Str("gift_id", giftID).
		Str("buyer_id", buyerID).
		Str("seller_id", sellerID).
		Int64("stars", gift.PriceInStars).
		Float64("amount", amount).
		Msg("settlement committed")

	// Post-commit: all best-effort. Ledger state is authoritative
	// regardless of what happens below.
	s.markSettled(ctx, giftID)
	if err := s.reservations.Release(ctx, giftID); err != nil {
		s.log.Warn().Err(err).Str("gift_id", giftID).Msg("failed to release reservation after settlement")
	}
	s.notifyParties(ctx, event, gift, sellerID)

	return nil
}

// markSettled records the gift in the fast-path duplicate cache.
func (s *SettlementServiceImpl) markSettled(ctx context.Context, giftID string) {
	if err := s.cache.MarkSettled(ctx, giftID, settledCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("gift_id", giftID).Msg("failed to mark settlement in cache")
	}
}

// notifyParties sends the buyer and seller confirmations. Failures are
// logged and never retried; they do not affect the committed settlement.
func (s *SettlementServiceImpl) notifyParties(ctx context.Context, event ports.PaymentConfirmation, gift *domain.Gift, sellerID string) {
	if event.PayerChatID != 0 {
		text := fmt.Sprintf("🎁 Your purchase of \"%s\" is confirmed. The gift is now yours!", gift.Name)
		if err := s.tg.SendMessage(ctx, event.PayerChatID, text); err != nil {
			s.log.Warn().Err(err).Str("gift_id", gift.ID).Msg("buyer notification failed")
		}
	}

	seller, err := s.userRepo.GetByID(ctx, sellerID)
	if err != nil || seller == nil {
		s.log.Warn().Err(err).Str("seller_id", sellerID).Msg("seller lookup for notification failed")
		return
	}
	text := fmt.Sprintf("💫 Your gift \"%s\" sold for %d stars. Your balance has been credited.", gift.Name, gift.PriceInStars)
	if err := s.tg.SendMessage(ctx, seller.ChatID, text); err != nil {
		s.log.Warn().Err(err).Str("gift_id", gift.ID).Msg("seller notification failed")
	}
}
