package handler

import (
	"net/http"

	"github.com/mikolimka20-hash/starsmarket.io/internal/core/domain"
	"github.com/mikolimka20-hash/starsmarket.io/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Header Telegram attaches when a webhook secret token is configured.
const headerSecretToken = "X-Telegram-Bot-Api-Secret-Token"

// WebhookHandler consumes Telegram bot updates. A 200 response
// acknowledges the update; anything else makes Telegram redeliver it.
type WebhookHandler struct {
	settlementSvc ports.SettlementService
	giftSvc       ports.GiftService
	tgClient      ports.TelegramClient
	secretToken   string
	log           zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler. An empty secretToken
// disables the header check.
func NewWebhookHandler(
	settlementSvc ports.SettlementService,
	giftSvc ports.GiftService,
	tgClient ports.TelegramClient,
	secretToken string,
	log zerolog.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		settlementSvc: settlementSvc,
		giftSvc:       giftSvc,
		tgClient:      tgClient,
		secretToken:   secretToken,
		log:           log,
	}
}

// HandleUpdate handles POST /api/v1/telegram/webhook.
func (h *WebhookHandler) HandleUpdate(c *gin.Context) {
	if h.secretToken != "" && c.GetHeader(headerSecretToken) != h.secretToken {
		c.Status(http.StatusUnauthorized)
		return
	}

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		// Malformed updates can never become valid; acknowledge them so
		// Telegram stops redelivering.
		h.log.Warn().Err(err).Msg("undecodable webhook update, acknowledged")
		c.Status(http.StatusOK)
		return
	}

	switch {
	case update.PreCheckoutQuery != nil:
		h.handlePreCheckout(c, update.PreCheckoutQuery)
	case update.Message != nil && update.Message.SuccessfulPayment != nil:
		h.handleSuccessfulPayment(c, update.Message)
	default:
		// Not a payment update; nothing to do.
		c.Status(http.StatusOK)
	}
}

// handlePreCheckout answers Telegram's final availability question before
// it charges the buyer. Telegram cancels the payment if no answer arrives
// within ten seconds.
func (h *WebhookHandler) handlePreCheckout(c *gin.Context, query *tgbotapi.PreCheckoutQuery) {
	ok, reason := h.checkAvailability(c, query.InvoicePayload)

	if err := h.tgClient.AnswerPreCheckout(c.Request.Context(), query.ID, ok, reason); err != nil {
		h.log.Error().Err(err).Str("query_id", query.ID).Msg("failed to answer pre-checkout query")
	}
	c.Status(http.StatusOK)
}

func (h *WebhookHandler) checkAvailability(c *gin.Context, payload string) (bool, string) {
	giftID, buyerID, err := domain.ParseInvoicePayload(payload)
	if err != nil {
		return false, "invalid purchase reference"
	}

	gift, err := h.giftSvc.GetGift(c.Request.Context(), giftID)
	if err != nil {
		return false, "gift is no longer available"
	}
	if !gift.IsPurchasable() || gift.OwnerID == buyerID {
		return false, "gift is no longer available"
	}
	return true, ""
}

// handleSuccessfulPayment forwards the payment confirmation to settlement.
// Settlement errors surface as a 500 so Telegram redelivers the update.
func (h *WebhookHandler) handleSuccessfulPayment(c *gin.Context, msg *tgbotapi.Message) {
	payment := msg.SuccessfulPayment

	event := ports.PaymentConfirmation{
		Payload:     payment.InvoicePayload,
		PayerChatID: msg.Chat.ID,
		TotalAmount: int64(payment.TotalAmount),
		Currency:    payment.Currency,
	}

	if err := h.settlementSvc.HandlePaymentConfirmation(c.Request.Context(), event); err != nil {
		h.log.Error().Err(err).Str("payload", payment.InvoicePayload).Msg("settlement failed, requesting redelivery")
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
