package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sumashijiru045-dot/pos-app/internal/application/event"
	"github.com/sumashijiru045-dot/pos-app/internal/application/service"
	"github.com/sumashijiru045-dot/pos-app/internal/application/state"
	"github.com/sumashijiru045-dot/pos-app/internal/config"
	domainRepo "github.com/sumashijiru045-dot/pos-app/internal/domain/repository"
	"github.com/sumashijiru045-dot/pos-app/internal/infrastructure/blobstore"
	"github.com/sumashijiru045-dot/pos-app/internal/infrastructure/database"
	"github.com/sumashijiru045-dot/pos-app/internal/infrastructure/repository"
	"github.com/sumashijiru045-dot/pos-app/internal/presentation/http/handler"
	"github.com/sumashijiru045-dot/pos-app/internal/presentation/http/routes"
	"github.com/sumashijiru045-dot/pos-app/pkg/orderid"
	"github.com/sumashijiru045-dot/pos-app/pkg/printer"
	"github.com/sumashijiru045-dot/pos-app/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the blob store that backs all snapshots
	store, err := openBlobStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open blob store: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.ExpiryHours)

	// Hydrate the in-memory state from persisted snapshots
	snapshotRepo := repository.NewSnapshotRepository(store)
	appState := state.New(snapshotRepo, event.NewLogSink())
	appState.Load(context.Background())

	// Initialize services
	authService := service.NewAuthService(jwtManager, cfg.Auth.OperatorPINHash)
	catalogService := service.NewCatalogService(appState)
	cartService := service.NewCartService(appState, orderid.NewGenerator())
	checkoutService := service.NewCheckoutService(appState, cfg.Shop.Name)
	exportService := service.NewExportService(appState)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, checkoutService, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Menu:     handler.NewMenuHandler(catalogService),
		Cart:     handler.NewCartHandler(cartService, checkoutService, cfg.Shop.StaffDiscountName, cfg.Shop.StaffDiscountAmount),
		Order:    handler.NewOrderHandler(checkoutService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Export:   handler.NewExportHandler(exportService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s, store driver: %s", cfg.App.Env, cfg.Store.Driver)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// openBlobStore picks the persistence driver from configuration.
func openBlobStore(cfg *config.Config) (domainRepo.BlobStore, error) {
	switch cfg.Store.Driver {
	case "postgres":
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, err
		}
		return blobstore.NewPostgresStore(db), nil
	case "memory":
		return blobstore.NewMemoryStore(), nil
	default:
		return blobstore.NewFileStore(cfg.Store.FileDir)
	}
}
