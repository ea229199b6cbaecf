package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/internal/handlers"
	"storefront/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	productHandler *handlers.ProductHandler,
	categoryHandler *handlers.CategoryHandler,
	brandHandler *handlers.BrandHandler,
	imageHandler *handlers.ImageHandler,
	attributeHandler *handlers.AttributeHandler,
	variantHandler *handlers.VariantHandler,
	orderHandler *handlers.OrderHandler,
) *gin.Engine {

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// ---- public
	auth := v1.Group("/auth")
	{
		auth.POST("/token", authHandler.Token)
		auth.POST("/register", authHandler.Register)
		auth.POST("/send-verification-code", authHandler.SendVerificationCode)
		auth.POST("/verify-email", authHandler.VerifyEmail)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	products := v1.Group("/products")
	{
		products.GET("", productHandler.List)
		products.GET("/:id", productHandler.GetByID)
		products.GET("/slug/:slug", productHandler.GetBySlug)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", categoryHandler.List)
		categories.GET("/:id", categoryHandler.GetByID)
		categories.GET("/:id/products", categoryHandler.Products)
	}

	brands := v1.Group("/brands")
	{
		brands.GET("", brandHandler.List)
		brands.GET("/:id", brandHandler.GetByID)
	}

	// ---- authenticated
	orders := v1.Group("/orders", middleware.AuthMiddleware())
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.GetByID)
		orders.PATCH("/:id", orderHandler.Update)
		orders.DELETE("/:id", orderHandler.Delete)
		orders.GET("/:id/invoice", orderHandler.Invoice)
	}

	// ---- admin
	v1.POST("/admin/auth/login", authHandler.AdminLogin)

	admin := v1.Group("/admin", middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		users := admin.Group("/users")
		{
			users.POST("", userHandler.Create)
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.GetByID)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}

		adminProducts := admin.Group("/products")
		{
			adminProducts.POST("", productHandler.Create)
			adminProducts.PUT("/:id", productHandler.Update)
			adminProducts.DELETE("/:id", productHandler.Delete)
		}

		adminCategories := admin.Group("/categories")
		{
			adminCategories.POST("", categoryHandler.Create)
			adminCategories.PUT("/:id", categoryHandler.Update)
			adminCategories.DELETE("/:id", categoryHandler.Delete)
		}

		adminBrands := admin.Group("/brands")
		{
			adminBrands.POST("", brandHandler.Create)
			adminBrands.PUT("/:id", brandHandler.Update)
			adminBrands.DELETE("/:id", brandHandler.Delete)
		}

		images := admin.Group("/images")
		{
			images.POST("/upload", imageHandler.Upload)
			images.GET("", imageHandler.List)
			images.GET("/:id", imageHandler.GetByID)
			images.PUT("/:id", imageHandler.Update)
			images.DELETE("/:id", imageHandler.Delete)
		}

		attributes := admin.Group("/attributes")
		{
			attributes.POST("", attributeHandler.Create)
			attributes.GET("", attributeHandler.List)
			attributes.GET("/:id", attributeHandler.GetByID)
			attributes.PUT("/:id", attributeHandler.Update)
			attributes.DELETE("/:id", attributeHandler.Delete)
		}

		variants := admin.Group("/variants")
		{
			variants.POST("", variantHandler.Create)
			variants.GET("", variantHandler.List)
			variants.GET("/:id", variantHandler.GetByID)
			variants.PUT("/:id", variantHandler.Update)
			variants.DELETE("/:id", variantHandler.Delete)
		}
	}

	return r
}
