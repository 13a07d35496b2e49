package domain

import "time"

// User represents a Telegram-authenticated marketplace user.
//
// StarBalance only increases through confirmed settlements in this
// subsystem; payouts live elsewhere.
type User struct {
	ID          string    `json:"id"` // Telegram user id, decimal string
	ChatID      int64     `json:"chat_id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	StarBalance int64     `json:"star_balance"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
