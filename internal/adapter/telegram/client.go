package telegram

import (
	"context"
	"fmt"

	"github.com/mikolimka20-hash/starsmarket.io/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// BotAPI is the subset of tgbotapi.BotAPI the client uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Client implements ports.TelegramClient on top of the Bot API.
type Client struct {
	api           BotAPI
	providerToken string
	log           zerolog.Logger
}

// NewClient creates a Telegram client. providerToken identifies the
// payment provider; for Telegram Stars it is the empty string.
func NewClient(api BotAPI, providerToken string, log zerolog.Logger) *Client {
	return &Client{api: api, providerToken: providerToken, log: log}
}

// SendInvoice delivers a payment invoice to the buyer's chat.
func (c *Client) SendInvoice(ctx context.Context, inv ports.Invoice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := tgbotapi.NewInvoice(
		inv.ChatID,
		inv.Title,
		inv.Description,
		inv.Payload,
		c.providerToken,
		"", // start parameter unused for chat invoices
		inv.Currency,
		[]tgbotapi.LabeledPrice{{Label: inv.Label, Amount: int(inv.AmountMinor)}},
	)

	if _, err := c.api.Send(cfg); err != nil {
		return fmt.Errorf("send invoice: %w", err)
	}

	c.log.Debug().
		Int64("chat_id", inv.ChatID).
		Str("payload", inv.Payload).
		Int64("amount_minor", inv.AmountMinor).
		Msg("invoice sent")

	return nil
}

// SendMessage delivers a plain-text notification.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// AnswerPreCheckout confirms or rejects a pre-checkout query. Telegram
// cancels the payment if no answer arrives within ten seconds.
func (c *Client) AnswerPreCheckout(ctx context.Context, queryID string, ok bool, errorMessage string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := tgbotapi.PreCheckoutConfig{
		PreCheckoutQueryID: queryID,
		OK:                 ok,
		ErrorMessage:       errorMessage,
	}
	if _, err := c.api.Request(cfg); err != nil {
		return fmt.Errorf("answer pre-checkout: %w", err)
	}
	return nil
}
