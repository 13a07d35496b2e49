package integration

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	httpHandler "github.com/mikolimka20-hash/starsmarket.io/internal/adapter/http/handler"
	redisStorage "github.com/mikolimka20-hash/starsmarket.io/internal/adapter/storage/redis"
	"github.com/mikolimka20-hash/starsmarket.io/internal/core/ports"
	"github.com/mikolimka20-hash/starsmarket.io/internal/service"
	"github.com/mikolimka20-hash/starsmarket.io/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBotToken      = "1234567:integration-bot-token"
	testWebhookSecret = "integration-hook-secret"
)

// captureTelegramClient records outbound provider calls instead of hitting
// the Bot API.
type captureTelegramClient struct {
	mu       sync.Mutex
	invoices []ports.Invoice
	messages []string
}

func (c *captureTelegramClient) SendInvoice(_ context.Context, inv ports.Invoice) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invoices = append(c.invoices, inv)
	return nil
}

func (c *captureTelegramClient) SendMessage(_ context.Context, _ int64, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, text)
	return nil
}

func (c *captureTelegramClient) AnswerPreCheckout(_ context.Context, _ string, _ bool, _ string) error {
	return nil
}

// testApp builds the full application stack: real HTTP layer, middleware,
// services and Redis stores (miniredis), with in-memory postgres repos.
type testApp struct {
	server       *httptest.Server
	redis        *miniredis.Miniredis
	giftRepo     *inMemoryGiftRepo
	userRepo     *inMemoryUserRepo
	purchaseRepo *inMemoryPurchaseRepo
	tg           *captureTelegramClient
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	settlementCache := redisStorage.NewSettlementCache(rdb)
	reservationStore := redisStorage.NewReservationStore(rdb)

	giftRepo := newInMemoryGiftRepo()
	userRepo := newInMemoryUserRepo()
	purchaseRepo := newInMemoryPurchaseRepo()
	transactor := newInMemoryTransactor()
	tg := &captureTelegramClient{}

	log := logger.New("debug", false)
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")
	pricingSvc := service.NewPricingService()

	authSvc := service.NewTelegramAuthService(userRepo, tokenSvc, testBotToken, time.Hour, log)
	giftSvc := service.NewGiftService(giftRepo, log)
	invoiceSvc := service.NewInvoiceService(
		giftRepo, userRepo, pricingSvc, reservationStore, tg,
		service.InvoiceConfig{Currency: "USD", ReservationTTL: 5 * time.Minute},
		log,
	)
	settlementSvc := service.NewSettlementService(
		giftRepo, userRepo, purchaseRepo, transactor,
		settlementCache, reservationStore, pricingSvc, tg, log,
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		GiftSvc:        giftSvc,
		InvoiceSvc:     invoiceSvc,
		SettlementSvc:  settlementSvc,
		TelegramClient: tg,
		UserRepo:       userRepo,
		PurchaseRepo:   purchaseRepo,
		TokenSvc:       tokenSvc,
		WebhookSecret:  testWebhookSecret,
		Logger:         log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server:       server,
		redis:        mr,
		giftRepo:     giftRepo,
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
		tg:           tg,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// --- Helpers ---

func signLoginFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+fields[k])
	}
	secret := sha256.Sum256([]byte(testBotToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(strings.Join(pairs, "\n")))
	return hex.EncodeToString(mac.Sum(nil))
}

// login performs a signed widget login and returns the session token.
func (a *testApp) login(t *testing.T, userID, firstName string) string {
	t.Helper()
	fields := map[string]string{
		"id":         userID,
		"first_name": firstName,
		"auth_date":  strconv.FormatInt(time.Now().Unix(), 10),
	}
	fields["hash"] = signLoginFields(fields)

	body, _ := json.Marshal(fields)
	resp, err := http.Post(a.server.URL+"/api/v1/auth/telegram", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result.Data.Token
}

func (a *testApp) doJSON(t *testing.T, method, path, token string, body any) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&parsed)
	return resp, parsed
}

func (a *testApp) postWebhook(t *testing.T, payload string, chatID int64, amount int) int {
	t.Helper()
	update := map[string]any{
		"update_id": 1,
		"message": map[string]any{
			"message_id": 10,
			"chat":       map[string]any{"id": chatID},
			"successful_payment": map[string]any{
				"currency":        "USD",
				"total_amount":    amount,
				"invoice_payload": payload,
			},
		},
	}
	body, _ := json.Marshal(update)
	req, err := http.NewRequest(http.MethodPost, a.server.URL+"/api/v1/telegram/webhook", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", testWebhookSecret)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

// --- Integration Tests ---

func TestIntegration_FullPurchaseFlow(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	sellerToken := app.login(t, "111", "Seller")
	buyerToken := app.login(t, "222", "Buyer")

	// Seller mints a gift and lists it.
	resp, body := app.doJSON(t, http.MethodPost, "/api/v1/gifts", sellerToken, map[string]any{
		"name":           "Golden Bear",
		"description":    "A shiny bear",
		"price_in_stars": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	giftID := body["data"].(map[string]interface{})["id"].(string)

	resp, _ = app.doJSON(t, http.MethodPut, fmt.Sprintf("/api/v1/gifts/%s/listing", giftID), sellerToken, map[string]any{"for_sale": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Buyer sees the gift on the market.
	resp, body = app.doJSON(t, http.MethodGet, "/api/v1/gifts", buyerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body["data"].([]interface{}), 1)

	// Buyer requests a purchase: an invoice is issued, nothing mutates.
	resp, body = app.doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/gifts/%s/purchase", giftID), buyerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	payload := data["payload"].(string)
	assert.Equal(t, giftID+":222", payload)
	assert.Equal(t, float64(1560), data["amount_minor"])
	require.Len(t, app.tg.invoices, 1)

	// Payment confirmation arrives on the webhook.
	require.Equal(t, http.StatusOK, app.postWebhook(t, payload, 222, 1560))

	// Gift is sold and transferred to the buyer.
	gift, err := app.giftRepo.GetByID(context.Background(), giftID)
	require.NoError(t, err)
	assert.True(t, gift.Sold)
	assert.False(t, gift.ForSale)
	assert.Equal(t, "222", gift.OwnerID)

	// Seller was credited the star price exactly once.
	seller, err := app.userRepo.GetByID(context.Background(), "111")
	require.NoError(t, err)
	assert.Equal(t, int64(10), seller.StarBalance)

	// Buyer's purchase history has one entry.
	resp, body = app.doJSON(t, http.MethodGet, "/api/v1/me/purchases", buyerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	purchases := body["data"].([]interface{})
	require.Len(t, purchases, 1)
	entry := purchases[0].(map[string]interface{})
	assert.Equal(t, giftID, entry["gift_id"])
	assert.Equal(t, "111", entry["seller_id"])
	assert.InDelta(t, 15.60, entry["amount_in_currency"].(float64), 0.0001)
}

func TestIntegration_DuplicateConfirmationIsAbsorbed(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	sellerToken := app.login(t, "111", "Seller")
	buyerToken := app.login(t, "222", "Buyer")

	resp, body := app.doJSON(t, http.MethodPost, "/api/v1/gifts", sellerToken, map[string]any{
		"name":           "Bear",
		"price_in_stars": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	giftID := body["data"].(map[string]interface{})["id"].(string)

	resp, _ = app.doJSON(t, http.MethodPut, fmt.Sprintf("/api/v1/gifts/%s/listing", giftID), sellerToken, map[string]any{"for_sale": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/gifts/%s/purchase", giftID), buyerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := giftID + ":222"
	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, app.postWebhook(t, payload, 222, 1560))
	}

	seller, err := app.userRepo.GetByID(context.Background(), "111")
	require.NoError(t, err)
	assert.Equal(t, int64(10), seller.StarBalance, "redeliveries must not credit the seller again")
	assert.Equal(t, 1, app.purchaseRepo.count())
}

func TestIntegration_SoldGiftCannotBePurchasedAgain(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	sellerToken := app.login(t, "111", "Seller")
	buyerToken := app.login(t, "222", "Buyer")
	lateBuyerToken := app.login(t, "333", "LateBuyer")

	resp, body := app.doJSON(t, http.MethodPost, "/api/v1/gifts", sellerToken, map[string]any{
		"name":           "Bear",
		"price_in_stars": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	giftID := body["data"].(map[string]interface{})["id"].(string)

	resp, _ = app.doJSON(t, http.MethodPut, fmt.Sprintf("/api/v1/gifts/%s/listing", giftID), sellerToken, map[string]any{"for_sale": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/gifts/%s/purchase", giftID), buyerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, http.StatusOK, app.postWebhook(t, giftID+":222", 222, 1560))

	resp, _ = app.doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/gifts/%s/purchase", giftID), lateBuyerToken, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestIntegration_ReservationBlocksSecondBuyer(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	sellerToken := app.login(t, "111", "Seller")
	buyerToken := app.login(t, "222", "Buyer")
	rivalToken := app.login(t, "333", "Rival")

	resp, body := app.doJSON(t, http.MethodPost, "/api/v1/gifts", sellerToken, map[string]any{
		"name":           "Bear",
		"price_in_stars": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	giftID := body["data"].(map[string]interface{})["id"].(string)

	resp, _ = app.doJSON(t, http.MethodPut, fmt.Sprintf("/api/v1/gifts/%s/listing", giftID), sellerToken, map[string]any{"for_sale": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/gifts/%s/purchase", giftID), buyerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/gifts/%s/purchase", giftID), rivalToken, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestIntegration_WebhookRejectsWrongSecret(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	body, _ := json.Marshal(map[string]any{"update_id": 1})
	req, err := http.NewRequest(http.MethodPost, app.server.URL+"/api/v1/telegram/webhook", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "wrong")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_AuthRequired(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, _ := app.doJSON(t, http.MethodGet, "/api/v1/gifts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
