package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sumashijiru045-dot/pos-app/internal/config"
	"github.com/sumashijiru045-dot/pos-app/internal/presentation/http/handler"
	"github.com/sumashijiru045-dot/pos-app/internal/presentation/http/middleware"
	"github.com/sumashijiru045-dot/pos-app/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Menu     *handler.MenuHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
	Checkout *handler.CheckoutHandler
	Export   *handler.ExportHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Single-terminal deployment, still worth capping abusive clients
		rateLimiter := middleware.NewClientRateLimiter(
			deps.Cfg.RateLimit.RequestsPerSecond,
			deps.Cfg.RateLimit.Burst,
		)
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Menu catalog
	registerMenuRoutes(protected, h)

	// Cart
	registerCartRoutes(protected, h)

	// Orders
	registerOrderRoutes(protected, h)

	// Checkout
	registerCheckoutRoutes(protected, h)

	// Export
	registerExportRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)
}

func registerMenuRoutes(protected *gin.RouterGroup, h *Handlers) {
	menu := protected.Group("/menu")
	{
		menu.GET("", h.Menu.List)
		menu.POST("", h.Menu.Create)
		menu.GET("/:id", h.Menu.Get)
		menu.PUT("/:id", h.Menu.Update)
		menu.PUT("/:id/image", h.Menu.SetImage)
		menu.DELETE("/:id", h.Menu.Delete)
	}
}

func registerCartRoutes(protected *gin.RouterGroup, h *Handlers) {
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.POST("/items/:id/increment", h.Cart.IncrementLine)
		cart.POST("/items/:id/decrement", h.Cart.DecrementLine)
		cart.DELETE("/items/:id", h.Cart.RemoveLine)
		cart.PUT("/note", h.Cart.SetNote)
		cart.PUT("/discount", h.Cart.SetDiscount)
		cart.POST("/discount/staff", h.Cart.ApplyStaffDiscount)
		cart.DELETE("/discount", h.Cart.ClearDiscount)
		cart.POST("/commit", h.Cart.Commit)
		cart.POST("/checkout", h.Cart.Checkout)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/orders")
	{
		orders.GET("/open", h.Order.ListOpen)
		orders.GET("/history", h.Order.History)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/edit", h.Order.Edit)
		orders.POST("/:id/void", h.Order.Void)
	}
}

func registerCheckoutRoutes(protected *gin.RouterGroup, h *Handlers) {
	checkout := protected.Group("/checkout")
	{
		checkout.GET("/active", h.Checkout.Active)
		checkout.POST("/open/:id", h.Checkout.Open)
		checkout.PUT("/payment-method", h.Checkout.SetPaymentMethod)
		checkout.PUT("/cash", h.Checkout.RecordCash)
		checkout.POST("/finalize", h.Checkout.Finalize)
		checkout.POST("/done", h.Checkout.Done)
	}
}

func registerExportRoutes(protected *gin.RouterGroup, h *Handlers) {
	export := protected.Group("/export")
	{
		export.GET("/ledger", h.Export.Download)
		export.GET("/tables", h.Export.Tables)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
		printerGroup.POST("/receipt/:id", h.Printer.PrintReceipt)
	}
}
