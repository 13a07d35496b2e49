package handler

import (
	"github.com/mikolimka20-hash/starsmarket.io/internal/adapter/http/dto"
	"github.com/mikolimka20-hash/starsmarket.io/internal/adapter/http/middleware"
	"github.com/mikolimka20-hash/starsmarket.io/internal/core/ports"
	"github.com/mikolimka20-hash/starsmarket.io/pkg/apperror"
	"github.com/mikolimka20-hash/starsmarket.io/pkg/response"

	"github.com/gin-gonic/gin"
)

// GiftHandler handles gift and marketplace endpoints.
type GiftHandler struct {
	giftSvc      ports.GiftService
	userRepo     ports.UserRepository
	purchaseRepo ports.PurchaseRepository
}

// NewGiftHandler creates a new GiftHandler.
func NewGiftHandler(giftSvc ports.GiftService, userRepo ports.UserRepository, purchaseRepo ports.PurchaseRepository) *GiftHandler {
	return &GiftHandler{giftSvc: giftSvc, userRepo: userRepo, purchaseRepo: purchaseRepo}
}

func callerID(c *gin.Context) (string, bool) {
	uid, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return "", false
	}
	return uid.(string), true
}

// Create handles POST /api/v1/gifts.
func (h *GiftHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	gift, err := h.giftSvc.CreateGift(c.Request.Context(), ports.CreateGiftRequest{
		OwnerID:      userID,
		Name:         req.Name,
		Description:  req.Description,
		PriceInStars: req.PriceInStars,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToGiftResponse(gift))
}

// Get handles GET /api/v1/gifts/:id.
func (h *GiftHandler) Get(c *gin.Context) {
	gift, err := h.giftSvc.GetGift(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToGiftResponse(gift))
}

// ListMarket handles GET /api/v1/gifts.
func (h *GiftHandler) ListMarket(c *gin.Context) {
	gifts, err := h.giftSvc.ListMarket(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToGiftResponses(gifts))
}

// SetListing handles PUT /api/v1/gifts/:id/listing.
func (h *GiftHandler) SetListing(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	gift, err := h.giftSvc.SetListing(c.Request.Context(), userID, c.Param("id"), *req.ForSale)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToGiftResponse(gift))
}

// Me handles GET /api/v1/me.
func (h *GiftHandler) Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	user, err := h.userRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if user == nil {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	response.OK(c, dto.ToUserResponse(user))
}

// MyGifts handles GET /api/v1/me/gifts.
func (h *GiftHandler) MyGifts(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	gifts, err := h.giftSvc.ListOwned(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToGiftResponses(gifts))
}

// MyPurchases handles GET /api/v1/me/purchases.
func (h *GiftHandler) MyPurchases(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	purchases, err := h.purchaseRepo.ListByBuyer(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, dto.ToPurchaseResponses(purchases))
}
