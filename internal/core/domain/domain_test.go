package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInvoicePayload(t *testing.T) {
	assert.Equal(t, "g1:u2", BuildInvoicePayload("g1", "u2"))
}

func TestParseInvoicePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		giftID  string
		buyerID string
		wantErr bool
	}{
		{"valid", "g1:u2", "g1", "u2", false},
		{"uuid gift id", "0d5a7e42-91c3-4f6e-8a1b-2c3d4e5f6a7b:12345", "0d5a7e42-91c3-4f6e-8a1b-2c3d4e5f6a7b", "12345", false},
		{"missing separator", "g1u2", "", "", true},
		{"empty gift id", ":u2", "", "", true},
		{"empty buyer id", "g1:", "", "", true},
		{"extra separator", "g1:u2:x", "", "", true},
		{"empty payload", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			giftID, buyerID, err := ParseInvoicePayload(tt.payload)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.giftID, giftID)
			assert.Equal(t, tt.buyerID, buyerID)
		})
	}
}

func TestParseInvoicePayload_RoundTrip(t *testing.T) {
	payload := BuildInvoicePayload("gift-abc", "987654321")
	giftID, buyerID, err := ParseInvoicePayload(payload)
	require.NoError(t, err)
	assert.Equal(t, "gift-abc", giftID)
	assert.Equal(t, "987654321", buyerID)
}

func TestPayloadSafeID(t *testing.T) {
	assert.True(t, PayloadSafeID("123456"))
	assert.True(t, PayloadSafeID("0d5a7e42-91c3-4f6e-8a1b-2c3d4e5f6a7b"))
	assert.False(t, PayloadSafeID("bad:id"))
	assert.False(t, PayloadSafeID(""))
}

func TestGift_IsPurchasable(t *testing.T) {
	tests := []struct {
		name    string
		forSale bool
		sold    bool
		want    bool
	}{
		{"listed and unsold", true, false, true},
		{"not listed", false, false, false},
		{"sold", false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Gift{ForSale: tt.forSale, Sold: tt.sold}
			assert.Equal(t, tt.want, g.IsPurchasable())
		})
	}
}
