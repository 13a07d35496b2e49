package domain

import (
	"time"
)

// Gift represents a sellable virtual item priced in Telegram Stars.
//
// Invariants: Sold implies !ForSale; Sold is monotonic and a gift is
// sold at most once. The ID is generated at creation (UUID) and is
// guaranteed free of the invoice-payload separator.
type Gift struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PriceInStars int64     `json:"price_in_stars"`
	ForSale      bool      `json:"for_sale"`
	Sold         bool      `json:"sold"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsPurchasable returns true if the gift can currently be bought.
func (g *Gift) IsPurchasable() bool {
	return g.ForSale && !g.Sold
}
