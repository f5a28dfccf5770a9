package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sumashijiru045-dot/pos-app/internal/application/service"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/entity"
	"github.com/sumashijiru045-dot/pos-app/internal/presentation/http/dto/response"
)

// CartHandler handles cart HTTP requests
type CartHandler struct {
	cartService     *service.CartService
	checkoutService *service.CheckoutService

	// Preset applied by the one-tap staff discount shortcut
	staffDiscountName   string
	staffDiscountAmount int64
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService, checkoutService *service.CheckoutService, staffDiscountName string, staffDiscountAmount int64) *CartHandler {
	return &CartHandler{
		cartService:         cartService,
		checkoutService:     checkoutService,
		staffDiscountName:   staffDiscountName,
		staffDiscountAmount: staffDiscountAmount,
	}
}

// cartView wraps the cart with its derived amounts for the UI.
func cartView(cart entity.Cart) gin.H {
	return gin.H{
		"cart":     cart,
		"subtotal": cart.Subtotal(),
		"total":    cart.Total(),
	}
}

// Get handles reading the current cart
func (h *CartHandler) Get(c *gin.Context) {
	cart := h.cartService.View()
	response.OK(c, "Cart retrieved successfully", cartView(cart))
}

// AddItem handles adding one unit of a menu item
func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		ItemID string `json:"item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.cartService.AddItem(req.ItemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added", cartView(cart))
}

// IncrementLine handles raising a line quantity
func (h *CartHandler) IncrementLine(c *gin.Context) {
	cart := h.cartService.IncrementLine(c.Param("id"))
	response.OK(c, "Line updated", cartView(cart))
}

// DecrementLine handles lowering a line quantity
func (h *CartHandler) DecrementLine(c *gin.Context) {
	cart := h.cartService.DecrementLine(c.Param("id"))
	response.OK(c, "Line updated", cartView(cart))
}

// RemoveLine handles dropping a line
func (h *CartHandler) RemoveLine(c *gin.Context) {
	cart := h.cartService.RemoveLine(c.Param("id"))
	response.OK(c, "Line removed", cartView(cart))
}

// SetNote handles attaching a note to the cart
func (h *CartHandler) SetNote(c *gin.Context) {
	var req struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	cart := h.cartService.SetNote(req.Note)
	response.OK(c, "Note updated", cartView(cart))
}

// SetDiscount handles applying a named discount
func (h *CartHandler) SetDiscount(c *gin.Context) {
	var req struct {
		Name   string `json:"name" binding:"required"`
		Amount int64  `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	cart := h.cartService.SetDiscount(req.Name, req.Amount)
	response.OK(c, "Discount applied", cartView(cart))
}

// ApplyStaffDiscount applies the configured staff discount in one tap
func (h *CartHandler) ApplyStaffDiscount(c *gin.Context) {
	cart := h.cartService.SetDiscount(h.staffDiscountName, h.staffDiscountAmount)
	response.OK(c, "Discount applied", cartView(cart))
}

// ClearDiscount handles removing the discount
func (h *CartHandler) ClearDiscount(c *gin.Context) {
	cart := h.cartService.ClearDiscount()
	response.OK(c, "Discount removed", cartView(cart))
}

// Commit handles "Save (Pay Later)" / "Save Changes": the cart becomes an
// order (or overwrites the order being edited) and is cleared.
func (h *CartHandler) Commit(c *gin.Context) {
	var req struct {
		OrderID string `json:"order_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.cartService.Commit(req.OrderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order saved successfully", order)
}

// Checkout handles the commit-then-pay path: the committed order becomes the
// active checkout target.
func (h *CartHandler) Checkout(c *gin.Context) {
	var req struct {
		OrderID string `json:"order_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.cartService.Commit(req.OrderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if _, err := h.checkoutService.OpenForCheckout(order.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order ready for checkout", order)
}
