package domain

import (
	"fmt"
	"strings"
)

// PayloadSeparator delimits giftId and buyerId inside an invoice payload.
// The "<giftId>:<buyerId>" format is part of the provider contract and must
// be preserved for invoices already in flight.
const PayloadSeparator = ":"

// BuildInvoicePayload encodes the purchase intent round-tripped by the
// payment provider. It is the only binding between a confirmation event
// and the gift/buyer pair it settles.
func BuildInvoicePayload(giftID, buyerID string) string {
	return giftID + PayloadSeparator + buyerID
}

// ParseInvoicePayload decodes a provider-delivered payload. Both halves
// must be non-empty and the payload must contain exactly one separator;
// ids are guaranteed separator-free by the id-generation scheme.
func ParseInvoicePayload(payload string) (giftID, buyerID string, err error) {
	parts := strings.Split(payload, PayloadSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed invoice payload %q", payload)
	}
	return parts[0], parts[1], nil
}

// PayloadSafeID reports whether an id can be embedded in an invoice
// payload without making parsing ambiguous. Checked at gift creation.
func PayloadSafeID(id string) bool {
	return id != "" && !strings.Contains(id, PayloadSeparator)
}
