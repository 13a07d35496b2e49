package integration

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentConfirmations fires many simultaneous deliveries of the
// same payment confirmation. Exactly one must apply: one sale, one seller
// credit, one ledger entry, regardless of interleaving.
func TestConcurrentConfirmations(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	sellerToken := app.login(t, "111", "Seller")
	buyerToken := app.login(t, "222", "Buyer")

	resp, body := app.doJSON(t, http.MethodPost, "/api/v1/gifts", sellerToken, map[string]any{
		"name":           "Golden Bear",
		"price_in_stars": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	giftID := body["data"].(map[string]interface{})["id"].(string)

	resp, _ = app.doJSON(t, http.MethodPut, fmt.Sprintf("/api/v1/gifts/%s/listing", giftID), sellerToken, map[string]any{"for_sale": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/gifts/%s/purchase", giftID), buyerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := giftID + ":222"
	concurrency := 50

	var wg sync.WaitGroup
	codes := make([]int, concurrency)
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			codes[idx] = app.postWebhook(t, payload, 222, 1560)
		}(i)
	}
	wg.Wait()

	// Every delivery is acknowledged.
	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}

	// The sale applied exactly once.
	seller, err := app.userRepo.GetByID(context.Background(), "111")
	require.NoError(t, err)
	assert.Equal(t, int64(10), seller.StarBalance, "seller credited exactly once")
	assert.Equal(t, 1, app.purchaseRepo.count(), "exactly one ledger entry")

	gift, err := app.giftRepo.GetByID(context.Background(), giftID)
	require.NoError(t, err)
	assert.True(t, gift.Sold)
	assert.Equal(t, "222", gift.OwnerID)
}

// TestConcurrentPurchaseAttempts has two buyers race for the same gift.
// The reservation rejects one at invoice time; even if both invoices had
// been issued, settlement would still admit only one.
func TestConcurrentPurchaseAttempts(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	sellerToken := app.login(t, "111", "Seller")

	buyers := 10
	tokens := make([]string, buyers)
	for i := 0; i < buyers; i++ {
		tokens[i] = app.login(t, fmt.Sprintf("%d", 1000+i), fmt.Sprintf("Buyer%d", i))
	}

	resp, body := app.doJSON(t, http.MethodPost, "/api/v1/gifts", sellerToken, map[string]any{
		"name":           "Bear",
		"price_in_stars": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	giftID := body["data"].(map[string]interface{})["id"].(string)

	resp, _ = app.doJSON(t, http.MethodPut, fmt.Sprintf("/api/v1/gifts/%s/listing", giftID), sellerToken, map[string]any{"for_sale": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var wg sync.WaitGroup
	statuses := make([]int, buyers)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			r, _ := app.doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/gifts/%s/purchase", giftID), tokens[idx], nil)
			statuses[idx] = r.StatusCode
		}(i)
	}
	wg.Wait()

	issued := 0
	for _, code := range statuses {
		if code == http.StatusOK {
			issued++
		} else {
			assert.Equal(t, http.StatusConflict, code)
		}
	}
	assert.Equal(t, 1, issued, "reservation admits exactly one invoice")
}
