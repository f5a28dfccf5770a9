package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sumashijiru045-dot/pos-app/internal/application/service"
	"github.com/sumashijiru045-dot/pos-app/internal/presentation/http/dto/response"
	"github.com/sumashijiru045-dot/pos-app/pkg/pagination"
)

// OrderHandler handles ledger HTTP requests
type OrderHandler struct {
	checkoutService *service.CheckoutService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(checkoutService *service.CheckoutService) *OrderHandler {
	return &OrderHandler{checkoutService: checkoutService}
}

// ListOpen handles listing Open orders, newest first
func (h *OrderHandler) ListOpen(c *gin.Context) {
	response.OK(c, "Open orders retrieved successfully", h.checkoutService.OpenOrders())
}

// History handles listing Closed and Void orders, paged because the ledger
// only ever grows
func (h *OrderHandler) History(c *gin.Context) {
	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	page := pagination.Paginate(h.checkoutService.History(), &params)
	response.OK(c, "Order history retrieved successfully", page)
}

// Get handles getting a single order
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.checkoutService.GetOrder(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", order)
}

// Edit loads an Open order back into the cart for editing
func (h *OrderHandler) Edit(c *gin.Context) {
	cart, err := h.checkoutService.EditOrder(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order loaded into cart", cartView(cart))
}

// Void cancels an Open order
func (h *OrderHandler) Void(c *gin.Context) {
	if err := h.checkoutService.VoidOrder(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order voided", nil)
}
