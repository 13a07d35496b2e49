package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mikolimka20-hash/starsmarket.io/internal/core/domain"
	"github.com/mikolimka20-hash/starsmarket.io/internal/core/ports"
	"github.com/mikolimka20-hash/starsmarket.io/pkg/apperror"

	"github.com/rs/zerolog"
)

// TelegramAuthService implements ports.AuthService. It verifies Telegram
// Login Widget payloads: HMAC-SHA256 over the alphabetically-sorted,
// newline-joined key=value fields, keyed by SHA256 of the bot token.
type TelegramAuthService struct {
	userRepo ports.UserRepository
	tokenSvc ports.TokenService
	botToken string
	maxAge   time.Duration
	log      zerolog.Logger
}

// NewTelegramAuthService creates a new TelegramAuthService. maxAge bounds
// how old an accepted auth_date may be; zero disables the check.
func NewTelegramAuthService(
	userRepo ports.UserRepository,
	tokenSvc ports.TokenService,
	botToken string,
	maxAge time.Duration,
	log zerolog.Logger,
) *TelegramAuthService {
	return &TelegramAuthService{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
		botToken: botToken,
		maxAge:   maxAge,
		log:      log,
	}
}

// LoginWithWidget validates the signed field map, upserts the user and
// opens a session.
func (s *TelegramAuthService) LoginWithWidget(ctx context.Context, fields map[string]string) (*ports.LoginResult, error) {
	signature, ok := fields["hash"]
	if !ok || signature == "" {
		return nil, apperror.ErrInvalidLoginPayload()
	}

	if !s.verifySignature(fields, signature) {
		return nil, apperror.ErrInvalidLoginPayload()
	}

	if s.maxAge > 0 {
		authDate, err := strconv.ParseInt(fields["auth_date"], 10, 64)
		if err != nil {
			return nil, apperror.ErrInvalidLoginPayload()
		}
		if time.Since(time.Unix(authDate, 0)) > s.maxAge {
			return nil, apperror.ErrLoginExpired()
		}
	}

	userID := fields["id"]
	chatID, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return nil, apperror.ErrInvalidLoginPayload()
	}

	displayName := strings.TrimSpace(fields["first_name"] + " " + fields["last_name"])
	if displayName == "" {
		displayName = fields["username"]
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:          userID,
		ChatID:      chatID,
		DisplayName: displayName,
		AvatarURL:   fields["photo_url"],
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, apperror.InternalError(err)
	}

	token, expiry, err := s.tokenSvc.Generate(userID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	s.log.Info().Str("user_id", userID).Msg("telegram login verified")

	return &ports.LoginResult{Token: token, Expiry: expiry, User: user}, nil
}

// verifySignature recomputes the login-widget HMAC and compares it
// against the supplied signature in constant time.
func (s *TelegramAuthService) verifySignature(fields map[string]string, signature string) bool {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+fields[k])
	}
	dataCheckString := strings.Join(pairs, "\n")

	secret := sha256.Sum256([]byte(s.botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(dataCheckString))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
