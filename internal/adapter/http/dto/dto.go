package dto

import (
	"time"

	"github.com/mikolimka20-hash/starsmarket.io/internal/core/domain"
)

// TelegramLoginRequest carries the raw Login Widget field map. All fields
// participate in signature verification, so it stays an open map instead
// of a fixed struct.
type TelegramLoginRequest map[string]string

// LoginResponse is the response body for a successful login.
type LoginResponse struct {
	Token  string       `json:"token"`
	Expiry int64        `json:"expiry"` // Unix timestamp
	User   UserResponse `json:"user"`
}

// UserResponse is the public view of a user profile.
type UserResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	StarBalance int64  `json:"star_balance"`
}

// CreateGiftRequest is the request body for minting a gift.
type CreateGiftRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Description  string `json:"description" binding:"max=500"`
	PriceInStars int64  `json:"price_in_stars" binding:"required,gt=0"`
}

// ListingRequest is the request body for listing or withdrawing a gift.
type ListingRequest struct {
	ForSale *bool `json:"for_sale" binding:"required"`
}

// GiftResponse is the public view of a gift.
type GiftResponse struct {
	ID           string `json:"id"`
	OwnerID      string `json:"owner_id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	PriceInStars int64  `json:"price_in_stars"`
	ForSale      bool   `json:"for_sale"`
	Sold         bool   `json:"sold"`
	CreatedAt    string `json:"created_at"`
}

// PurchaseResponse is one entry in a buyer's purchase history.
type PurchaseResponse struct {
	ID               string  `json:"id"`
	GiftID           string  `json:"gift_id"`
	SellerID         string  `json:"seller_id"`
	AmountInCurrency float64 `json:"amount_in_currency"`
	CreatedAt        string  `json:"created_at"`
}

// ToGiftResponse maps a domain gift to its API view.
func ToGiftResponse(g *domain.Gift) GiftResponse {
	return GiftResponse{
		ID:           g.ID,
		OwnerID:      g.OwnerID,
		Name:         g.Name,
		Description:  g.Description,
		PriceInStars: g.PriceInStars,
		ForSale:      g.ForSale,
		Sold:         g.Sold,
		CreatedAt:    g.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToGiftResponses maps a slice of gifts.
func ToGiftResponses(gifts []domain.Gift) []GiftResponse {
	out := make([]GiftResponse, 0, len(gifts))
	for i := range gifts {
		out = append(out, ToGiftResponse(&gifts[i]))
	}
	return out
}

// ToUserResponse maps a domain user to its API view.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		StarBalance: u.StarBalance,
	}
}

// ToPurchaseResponses maps purchase history entries.
func ToPurchaseResponses(purchases []domain.Purchase) []PurchaseResponse {
	out := make([]PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, PurchaseResponse{
			ID:               p.ID,
			GiftID:           p.GiftID,
			SellerID:         p.SellerID,
			AmountInCurrency: p.AmountInCurrency,
			CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
