package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sumashijiru045-dot/pos-app/internal/application/service"
	"github.com/sumashijiru045-dot/pos-app/internal/presentation/http/dto/response"
)

// MenuHandler handles catalog HTTP requests
type MenuHandler struct {
	catalogService *service.CatalogService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(catalogService *service.CatalogService) *MenuHandler {
	return &MenuHandler{catalogService: catalogService}
}

// List handles listing menu items, optionally filtered by category
func (h *MenuHandler) List(c *gin.Context) {
	items := h.catalogService.List(c.Query("category"))
	response.OK(c, "Menu retrieved successfully", items)
}

// Get handles getting a single menu item
func (h *MenuHandler) Get(c *gin.Context) {
	item, err := h.catalogService.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item retrieved successfully", item)
}

// Create handles adding a blank menu item
func (h *MenuHandler) Create(c *gin.Context) {
	item := h.catalogService.Create()
	response.Created(c, "Menu item created successfully", item)
}

// Update handles patching a menu item
func (h *MenuHandler) Update(c *gin.Context) {
	var req struct {
		Name     *string `json:"name"`
		Price    *int64  `json:"price"`
		Category *string `json:"category"`
		ImageRef *string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.Update(c.Param("id"), service.UpdateMenuItemInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		ImageRef: req.ImageRef,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item updated successfully", item)
}

// SetImage stores the encoded image reference produced by the image pipeline
func (h *MenuHandler) SetImage(c *gin.Context) {
	var req struct {
		ImageRef string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.SetImage(c.Param("id"), req.ImageRef)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu image updated successfully", item)
}

// Delete handles removing a menu item
func (h *MenuHandler) Delete(c *gin.Context) {
	if err := h.catalogService.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
