package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront/internal/config"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Store layer ---
	// The memory backend is the in-process stand-in for a real server
	// database, used for local development; sqlite and postgres go
	// through GORM.
	productRepo, cartRepo, orderRepo, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	// --- Order events (optional) ---
	var events services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient
	}

	// --- Services ---
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, cartRepo, events)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(productService, orderService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"store":  cfg.StoreBackend,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	apiV1 := app.Group("/api/v1", middleware.Identity(cfg.JWTSecret, cfg.DefaultUserID))
	productHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)

	adminGroup := apiV1.Group("", middleware.AdminRequired())
	adminHandler.RegisterRoutes(adminGroup)

	// --- Order event consumer ---
	// A placeholder fulfillment worker: it only logs the events the
	// order service publishes.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for order events...")
			handler := func(msg amqp.Delivery) error {
				log.Printf("Received order event (tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeOrderEvents(handler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s (store backend: %s)", cfg.AppPort, cfg.StoreBackend)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// buildStore constructs the repositories for the configured backend and
// seeds demo data where requested.
func buildStore(cfg *config.Config) (repositories.ProductRepository, repositories.CartRepository, repositories.OrderRepository, error) {
	switch cfg.StoreBackend {
	case "memory":
		productRepo := repositories.NewMemoryProductRepository()
		cartRepo := repositories.NewMemoryCartRepository()
		orderRepo := repositories.NewMemoryOrderRepository()
		if cfg.SeedDemoData {
			if err := repositories.SeedDemoData(productRepo, cartRepo, orderRepo, cfg.DefaultUserID); err != nil {
				return nil, nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
			}
			log.Println("Seeded demo catalog into the memory store")
		}
		return productRepo, cartRepo, orderRepo, nil

	case "sqlite", "postgres":
		var dialector gorm.Dialector
		if cfg.StoreBackend == "sqlite" {
			dialector = sqlite.Open(cfg.DatabaseDSN)
		} else {
			dialector = postgres.Open(cfg.DatabaseDSN)
		}
		db, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		err = db.AutoMigrate(
			&models.Product{},
			&models.Cart{},
			&models.CartItem{},
			&models.Order{},
			&models.OrderItem{},
		)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return repositories.NewGORMProductRepository(db),
			repositories.NewGORMCartRepository(db),
			repositories.NewGORMOrderRepository(db),
			nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
