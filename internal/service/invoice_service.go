package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mikolimka20-hash/starsmarket.io/internal/core/domain"
	"github.com/mikolimka20-hash/starsmarket.io/internal/core/ports"
	"github.com/mikolimka20-hash/starsmarket.io/pkg/apperror"

	"github.com/rs/zerolog"
)

// InvoiceServiceImpl implements ports.InvoiceService. Issuing an invoice
// never mutates gift state; the settlement handler owns all transitions.
type InvoiceServiceImpl struct {
	giftRepo     ports.GiftRepository
	userRepo     ports.UserRepository
	pricing      ports.PricingService
	reservations ports.ReservationStore
	tg           ports.TelegramClient
	cfg          InvoiceConfig
	log          zerolog.Logger
}

// InvoiceConfig carries provider-facing invoice settings.
type InvoiceConfig struct {
	Currency       string
	ReservationTTL time.Duration
}

// NewInvoiceService creates a new InvoiceServiceImpl.
func NewInvoiceService(
	giftRepo ports.GiftRepository,
	userRepo ports.UserRepository,
	pricing ports.PricingService,
	reservations ports.ReservationStore,
	tg ports.TelegramClient,
	cfg InvoiceConfig,
	log zerolog.Logger,
) *InvoiceServiceImpl {
	return &InvoiceServiceImpl{
		giftRepo:     giftRepo,
		userRepo:     userRepo,
		pricing:      pricing,
		reservations: reservations,
		tg:           tg,
		cfg:          cfg,
		log:          log,
	}
}

// IssuePurchaseInvoice validates availability, places a short-lived hold
// on the gift and asks the provider to collect payment from the buyer.
func (s *InvoiceServiceImpl) IssuePurchaseInvoice(ctx context.Context, buyerID, giftID string) (*ports.InvoiceResult, error) {
	gift, err := s.giftRepo.GetByID(ctx, giftID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup gift: %w", err))
	}
	if gift == nil {
		return nil, apperror.ErrGiftNotFound()
	}
	if !gift.IsPurchasable() {
		return nil, apperror.ErrGiftUnavailable()
	}
	if gift.OwnerID == buyerID {
		return nil, apperror.ErrSelfPurchase()
	}

	buyer, err := s.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup buyer: %w", err))
	}
	if buyer == nil {
		return nil, apperror.ErrInvalidToken()
	}

	// Advisory hold so two buyers don't both pay for the same gift. The
	// settlement-time sold check remains the authoritative guard, so a
	// reservation-store outage degrades rather than blocks purchases.
	held, err := s.reservations.Reserve(ctx, giftID, buyerID, s.cfg.ReservationTTL)
	if err != nil {
		s.log.Warn().Err(err).Str("gift_id", giftID).Msg("reservation check failed, proceeding without hold")
	} else if !held {
		return nil, apperror.ErrGiftReserved()
	}

	amount, err := s.pricing.PriceForStars(gift.PriceInStars)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("price gift: %w", err))
	}
	minor := s.pricing.MinorUnits(amount)
	payload := domain.BuildInvoicePayload(giftID, buyerID)

	err = s.tg.SendInvoice(ctx, ports.Invoice{
		ChatID:      buyer.ChatID,
		Title:       gift.Name,
		Description: gift.Description,
		Payload:     payload,
		Currency:    s.cfg.Currency,
		Label:       gift.Name,
		AmountMinor: minor,
	})
	if err != nil {
		if relErr := s.reservations.Release(ctx, giftID); relErr != nil {
			s.log.Warn().Err(relErr).Str("gift_id", giftID).Msg("failed to release reservation after invoice error")
		}
		return nil, apperror.ErrProviderUnavailable(err)
	}

	s.log.Info().
		Str("gift_id", giftID).
		Str("buyer_id", buyerID).
		Int64("amount_minor", minor).
		Str("currency", s.cfg.Currency).
		Msg("purchase invoice issued")

	return &ports.InvoiceResult{
		GiftID:      giftID,
		Payload:     payload,
		Amount:      amount,
		AmountMinor: minor,
		Currency:    s.cfg.Currency,
	}, nil
}
