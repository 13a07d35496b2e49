package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mikolimka20-hash/starsmarket.io/config"
	httpHandler "github.com/mikolimka20-hash/starsmarket.io/internal/adapter/http/handler"
	pgStorage "github.com/mikolimka20-hash/starsmarket.io/internal/adapter/storage/postgres"
	redisStorage "github.com/mikolimka20-hash/starsmarket.io/internal/adapter/storage/redis"
	"github.com/mikolimka20-hash/starsmarket.io/internal/adapter/telegram"
	"github.com/mikolimka20-hash/starsmarket.io/internal/core/ports"
	"github.com/mikolimka20-hash/starsmarket.io/internal/service"
	"github.com/mikolimka20-hash/starsmarket.io/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Stars Market API")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize Telegram bot client
	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Telegram Bot API")
	}
	tgClient := telegram.NewClient(botAPI, cfg.Telegram.ProviderToken, log)
	log.Info().Str("bot", botAPI.Self.UserName).Msg("Telegram bot authorized")

	// Initialize repositories
	giftRepo := pgStorage.NewGiftRepo(pool)
	userRepo := pgStorage.NewUserRepo(pool)
	purchaseRepo := pgStorage.NewPurchaseRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	settlementCache := redisStorage.NewSettlementCache(rdb)
	reservationStore := redisStorage.NewReservationStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	pricingSvc := service.NewPricingService()

	// Initialize business services
	authSvc := service.NewTelegramAuthService(userRepo, tokenSvc, cfg.Telegram.BotToken, cfg.Telegram.LoginMaxAge, log)
	giftSvc := service.NewGiftService(giftRepo, log)
	invoiceSvc := service.NewInvoiceService(
		giftRepo, userRepo, pricingSvc, reservationStore, tgClient,
		service.InvoiceConfig{
			Currency:       cfg.Telegram.Currency,
			ReservationTTL: cfg.Telegram.ReservationTTL,
		},
		log,
	)
	settlementSvc := service.NewSettlementService(
		giftRepo, userRepo, purchaseRepo, transactor,
		settlementCache, reservationStore, pricingSvc, tgClient, log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		GiftSvc:        giftSvc,
		InvoiceSvc:     invoiceSvc,
		SettlementSvc:  settlementSvc,
		TelegramClient: tgClient,
		UserRepo:       userRepo,
		PurchaseRepo:   purchaseRepo,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		WebhookSecret:  cfg.Telegram.WebhookSecret,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
