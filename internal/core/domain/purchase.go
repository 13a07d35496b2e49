package domain

import "time"

// Purchase is an append-only ledger entry recorded once per successful
// settlement. The unique giftId acts as the audit and idempotency record:
// at most one purchase may ever exist per gift.
type Purchase struct {
	ID               string    `json:"id"`
	GiftID           string    `json:"gift_id"`
	BuyerID          string    `json:"buyer_id"`
	SellerID         string    `json:"seller_id"`
	AmountInCurrency float64   `json:"amount_in_currency"`
	CreatedAt        time.Time `json:"created_at"`
}
