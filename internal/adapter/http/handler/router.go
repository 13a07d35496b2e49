package handler

import (
	"github.com/mikolimka20-hash/starsmarket.io/internal/adapter/http/middleware"
	redisStore "github.com/mikolimka20-hash/starsmarket.io/internal/adapter/storage/redis"
	"github.com/mikolimka20-hash/starsmarket.io/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	GiftSvc        ports.GiftService
	InvoiceSvc     ports.InvoiceService
	SettlementSvc  ports.SettlementService
	TelegramClient ports.TelegramClient
	UserRepo       ports.UserRepository
	PurchaseRepo   ports.PurchaseRepository
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	WebhookSecret  string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	v1.POST("/auth/telegram", rl("auth_login"), authHandler.TelegramLogin)

	// Telegram webhook is authenticated by its secret token header.
	webhookHandler := NewWebhookHandler(
		deps.SettlementSvc, deps.GiftSvc, deps.TelegramClient,
		deps.WebhookSecret, deps.Logger,
	)
	v1.POST("/telegram/webhook", webhookHandler.HandleUpdate)

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	giftHandler := NewGiftHandler(deps.GiftSvc, deps.UserRepo, deps.PurchaseRepo)
	purchaseHandler := NewPurchaseHandler(deps.InvoiceSvc)

	gifts := v1.Group("/gifts", jwtAuth)
	{
		gifts.GET("", rl("market"), giftHandler.ListMarket)
		gifts.POST("", rl("gifts_write"), giftHandler.Create)
		gifts.GET("/:id", rl("market"), giftHandler.Get)
		gifts.PUT("/:id/listing", rl("gifts_write"), giftHandler.SetListing)
		gifts.POST("/:id/purchase", rl("purchase"), purchaseHandler.Purchase)
	}

	me := v1.Group("/me", jwtAuth)
	{
		me.GET("", rl("market"), giftHandler.Me)
		me.GET("/gifts", rl("market"), giftHandler.MyGifts)
		me.GET("/purchases", rl("market"), giftHandler.MyPurchases)
	}

	return r
}
