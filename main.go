package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/gilangrmdhn/topup_backend_go/internal/config"
	"github.com/gilangrmdhn/topup_backend_go/internal/database"
	"github.com/gilangrmdhn/topup_backend_go/internal/handlers"
	"github.com/gilangrmdhn/topup_backend_go/internal/middleware"
	"github.com/gilangrmdhn/topup_backend_go/internal/repositories"
	"github.com/gilangrmdhn/topup_backend_go/internal/services"
)

func main() {
	// 1) Load env + config (DATABASE_URL boleh kosong)
	cfg := config.Load()

	// 2) Connect MongoDB; gagal bukan fatal, server jalan mode degraded
	client, db, connErr := database.Connect(cfg.DatabaseURL, cfg.DatabaseName)
	if connErr != nil {
		log.Printf("warning: koneksi MongoDB gagal: %v (mode degraded)", connErr)
	}
	if client != nil {
		defer func() {
			_ = client.Disconnect(context.Background())
		}()
	}

	store := repositories.NewStore(db, connErr)

	// 3) Seed katalog sebelum menerima traffic (no-op kalau sudah terisi
	//    atau database tidak tersedia)
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 15*time.Second)
	if err := repositories.SeedCatalog(seedCtx, store); err != nil {
		log.Printf("warning: seed katalog gagal: %v", err)
	}
	cancelSeed()

	// 4) Init dependencies
	catalogSvc := services.NewCatalogService(store)
	orderSvc := services.NewOrderService(store)
	contentSvc := services.NewContentService(store)

	// 5) Init handlers
	catalogHandler := handlers.NewCatalogHandler(catalogSvc)
	orderHandler := handlers.NewOrderHandler(orderSvc)
	contentHandler := handlers.NewContentHandler(contentSvc)
	systemHandler := handlers.NewSystemHandler(store, cfg.DatabaseURL != "")

	// 6) Fiber app dengan timeout
	app := fiber.New(fiber.Config{
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	// 7) Middleware: request id, access log, CORS terbuka untuk storefront
	app.Use(middleware.RequestID())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "*",
	}))

	// 8) Routes
	app.Get("/", systemHandler.Root)
	app.Get("/test", systemHandler.TestDatabase)

	api := app.Group("/api")
	api.Get("/games", catalogHandler.ListGames)
	api.Get("/games/:slug", catalogHandler.GetGame)
	api.Get("/games/:slug/options", catalogHandler.ListOptions)
	api.Post("/orders", orderHandler.CreateOrder)
	api.Get("/orders", orderHandler.ListOrders)
	api.Get("/testimonials", contentHandler.Testimonials)
	api.Get("/blog", contentHandler.Blog)
	api.Get("/faq", contentHandler.FAQ)

	// 9) Server start
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting server on %s (CORS origins: %s)", addr, cfg.CORSOrigins)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server listen error: %v", err)
		}
	}()

	<-quit
	log.Println("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully.")
}
