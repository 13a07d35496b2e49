package handler

import (
	"github.com/mikolimka20-hash/starsmarket.io/internal/core/ports"
	"github.com/mikolimka20-hash/starsmarket.io/pkg/response"

	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles purchase initiation.
type PurchaseHandler struct {
	invoiceSvc ports.InvoiceService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(invoiceSvc ports.InvoiceService) *PurchaseHandler {
	return &PurchaseHandler{invoiceSvc: invoiceSvc}
}

// Purchase handles POST /api/v1/gifts/:id/purchase. It issues an invoice
// to the buyer's chat; the sale itself completes only when the payment
// confirmation arrives on the webhook.
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	buyerID, ok := callerID(c)
	if !ok {
		return
	}

	result, err := h.invoiceSvc.IssuePurchaseInvoice(c.Request.Context(), buyerID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
