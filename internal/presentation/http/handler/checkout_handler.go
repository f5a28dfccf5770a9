package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sumashijiru045-dot/pos-app/internal/application/service"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/enum"
	"github.com/sumashijiru045-dot/pos-app/internal/presentation/http/dto/response"
)

// CheckoutHandler handles payment HTTP requests for the active order
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Open makes an order the active checkout target
func (h *CheckoutHandler) Open(c *gin.Context) {
	order, err := h.checkoutService.OpenForCheckout(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Checkout opened", order)
}

// Active returns the order currently being paid
func (h *CheckoutHandler) Active(c *gin.Context) {
	order, err := h.checkoutService.ActiveOrder()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Active order retrieved successfully", order)
}

// SetPaymentMethod records Cash or QR on the active order
func (h *CheckoutHandler) SetPaymentMethod(c *gin.Context) {
	var req struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	active, err := h.checkoutService.ActiveOrder()
	if err != nil {
		response.Error(c, err)
		return
	}

	var method enum.PaymentMethod
	switch req.Method {
	case "Cash":
		method = enum.PaymentMethodCash
	case "QR":
		method = enum.PaymentMethodQR
	}

	order, err := h.checkoutService.SetPaymentMethod(active.ID, method)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment method set", order)
}

// RecordCash applies tendered cash to the active order. The client sends the
// full tender picture every time (Kip cash, foreign amount, rate, currency);
// the engine recomputes received total and change from first principles.
func (h *CheckoutHandler) RecordCash(c *gin.Context) {
	var req struct {
		KipCash    int64   `json:"kip_cash"`
		FxAmount   float64 `json:"fx_amount"`
		FxRate     float64 `json:"fx_rate"`
		FxCurrency string  `json:"fx_currency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	active, err := h.checkoutService.ActiveOrder()
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.checkoutService.RecomputeCash(active.ID, req.KipCash, req.FxAmount, req.FxRate, enum.ParseFxCurrency(req.FxCurrency))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cash recorded", order)
}

// Finalize accepts the payment, closes the order and returns the receipt
func (h *CheckoutHandler) Finalize(c *gin.Context) {
	active, err := h.checkoutService.ActiveOrder()
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.checkoutService.Finalize(active.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment finalized", receipt)
}

// Done ends the checkout session after the receipt is handled
func (h *CheckoutHandler) Done(c *gin.Context) {
	h.checkoutService.ClearActive()
	response.OK(c, "Checkout session cleared", nil)
}
