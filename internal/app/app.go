package app

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/notify"
	"storefront/internal/pdf"
	"storefront/internal/repositories"
	"storefront/internal/routes"
	"storefront/internal/services"
	"storefront/internal/storage"

	_ "storefront/docs"
)

func Run() {
	cfg := config.LoadConfig()

	middleware.SetJWTKey(cfg.Auth.JWTSecret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// === Redis (optional; nil client disables the product cache) ===
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	productCache := cache.NewProductCache(rdb)

	// === Storage backend ===
	backend, err := storage.NewBackend(cfg.Storage)
	if err != nil {
		log.Fatal("Failed to init storage backend: ", err)
	}

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	imageRepo := repositories.NewProductImageRepository(db)
	attributeRepo := repositories.NewProductAttributeRepository(db)
	variantRepo := repositories.NewProductVariantRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	// === Services ===
	authService := services.NewAuthService(time.Duration(cfg.Auth.AccessTokenMinutes) * time.Minute)
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
	)
	defer emailService.Close()

	userService := services.NewUserService(userRepo, emailService, authService)
	verificationService := services.NewVerificationService(userRepo, emailService, authService)
	productService := services.NewProductService(productRepo, categoryRepo, productCache)
	categoryService := services.NewCategoryService(categoryRepo)
	brandService := services.NewBrandService(brandRepo)
	imageService := services.NewImageService(imageRepo, productRepo, backend)
	attributeService := services.NewAttributeService(attributeRepo, productRepo)
	variantService := services.NewVariantService(variantRepo, productRepo)

	notifier := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.AdminChatID)
	orderService := services.NewOrderService(orderRepo, notifier)

	invoiceGen := pdf.NewInvoiceGenerator(cfg.Files.RootDir)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService, verificationService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, productService)
	brandHandler := handlers.NewBrandHandler(brandService)
	imageHandler := handlers.NewImageHandler(imageService)
	attributeHandler := handlers.NewAttributeHandler(attributeService)
	variantHandler := handlers.NewVariantHandler(variantService)
	orderHandler := handlers.NewOrderHandler(orderService, userService, invoiceGen, cfg.Files.RootDir)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(cfg.Frontend.URL))

	// locally stored uploads are served straight from disk
	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalDir)
	}

	routes.SetupRoutes(
		router,
		authHandler,
		userHandler,
		productHandler,
		categoryHandler,
		brandHandler,
		imageHandler,
		attributeHandler,
		variantHandler,
		orderHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Server failed: ", err)
	}
}

func corsMiddleware(frontendURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", frontendURL)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
