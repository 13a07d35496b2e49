package ports

import (
	"context"
	"time"

	"github.com/mikolimka20-hash/starsmarket.io/internal/core/domain"
)

// --- External collaborators ---

// TelegramClient is the outbound surface of the messaging/payment provider.
type TelegramClient interface {
	// SendInvoice asks the provider to collect payment from the buyer.
	SendInvoice(ctx context.Context, inv Invoice) error
	// SendMessage delivers a plain-text chat notification.
	SendMessage(ctx context.Context, chatID int64, text string) error
	// AnswerPreCheckout confirms or rejects a pre-checkout query.
	AnswerPreCheckout(ctx context.Context, queryID string, ok bool, errorMessage string) error
}

// Invoice carries the fields of a provider sendInvoice request.
type Invoice struct {
	ChatID      int64
	Title       string
	Description string
	Payload     string
	Currency    string
	Label       string
	AmountMinor int64 // price in the currency's minor units
}

// ReservationStore places a short-lived hold on a gift at invoice-issue
// time so concurrent buyers do not receive invoices for the same gift.
// The hold is advisory: settlement remains the authoritative guard.
type ReservationStore interface {
	// Reserve acquires or refreshes the hold. Returns false when another
	// buyer already holds the gift.
	Reserve(ctx context.Context, giftID, buyerID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, giftID string) error
}

// SettlementCache is the fast-path duplicate absorber for confirmation
// events. The sold flag in storage remains the authoritative check.
type SettlementCache interface {
	IsSettled(ctx context.Context, giftID string) (bool, error)
	MarkSettled(ctx context.Context, giftID string, ttl time.Duration) error
}

// --- Service ports (business logic) ---

// PricingService converts star prices into provider currency amounts.
type PricingService interface {
	// PriceForStars returns the currency amount with exactly two decimal
	// places. Rejects non-positive star counts.
	PriceForStars(stars int64) (float64, error)
	// MinorUnits converts a two-decimal amount to the provider's integer
	// minor units.
	MinorUnits(amount float64) int64
}

// InvoiceService issues purchase invoices. It never mutates gift state.
type InvoiceService interface {
	IssuePurchaseInvoice(ctx context.Context, buyerID, giftID string) (*InvoiceResult, error)
}

// InvoiceResult is the acknowledged invoice sent to the buyer.
type InvoiceResult struct {
	GiftID      string  `json:"gift_id"`
	Payload     string  `json:"payload"`
	Amount      float64 `json:"amount"`
	AmountMinor int64   `json:"amount_minor"`
	Currency    string  `json:"currency"`
}

// SettlementService consumes payment-confirmation events.
type SettlementService interface {
	// HandlePaymentConfirmation applies the exactly-once sale transition.
	// A nil return acknowledges the event to the provider; an error forces
	// redelivery. Safe to call repeatedly with the same event.
	HandlePaymentConfirmation(ctx context.Context, event PaymentConfirmation) error
}

// PaymentConfirmation is the provider-delivered proof of payment.
type PaymentConfirmation struct {
	Payload     string // opaque invoice payload, round-tripped unmodified
	PayerChatID int64
	TotalAmount int64 // minor units actually charged
	Currency    string
}

// GiftService covers gift creation and marketplace listings.
type GiftService interface {
	CreateGift(ctx context.Context, req CreateGiftRequest) (*domain.Gift, error)
	GetGift(ctx context.Context, id string) (*domain.Gift, error)
	ListMarket(ctx context.Context) ([]domain.Gift, error)
	ListOwned(ctx context.Context, ownerID string) ([]domain.Gift, error)
	SetListing(ctx context.Context, ownerID, giftID string, forSale bool) (*domain.Gift, error)
}

// CreateGiftRequest holds validated input for gift creation.
type CreateGiftRequest struct {
	OwnerID      string
	Name         string
	Description  string
	PriceInStars int64
}

// AuthService verifies Telegram login payloads and opens sessions.
type AuthService interface {
	// LoginWithWidget validates a Telegram Login Widget payload (field map
	// including the "hash" signature), upserts the user and returns a
	// session token with its expiry.
	LoginWithWidget(ctx context.Context, fields map[string]string) (*LoginResult, error)
}

// LoginResult is a freshly opened session.
type LoginResult struct {
	Token  string
	Expiry time.Time
	User   *domain.User
}

// TokenService handles session token operations.
type TokenService interface {
	Generate(userID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session claims.
type TokenClaims struct {
	UserID string
}
