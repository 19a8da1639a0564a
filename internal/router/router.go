// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vastra/admin-backend/internal/config"
	"github.com/vastra/admin-backend/internal/handlers"
	"github.com/vastra/admin-backend/internal/middleware"
	"github.com/vastra/admin-backend/internal/services"
	"github.com/vastra/admin-backend/internal/storage"
)

// Setup wires services, handlers and middleware into the gin engine.
func Setup(db *gorm.DB, store storage.Client, cfg *config.Config) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	imageService := services.NewImageService(db, store, cfg)
	catalogService := services.NewCatalogService(db, imageService, cfg)
	productService := services.NewProductService(db, imageService, cfg)
	orderService := services.NewOrderService(db)
	userService := services.NewUserService(db)
	dashboardService := services.NewDashboardService(db, orderService)
	authService := services.NewAuthService(db, cfg)

	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, cfg)
	productHandler := handlers.NewProductHandler(productService, imageService, cfg)
	orderHandler := handlers.NewOrderHandler(orderService)
	userHandler := handlers.NewUserHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.GeneralRateLimit())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")

	auth := v1.Group("/auth")
	auth.Use(middleware.AuthRateLimit())
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	admin := v1.Group("")
	admin.Use(middleware.AuthRequired())
	admin.Use(middleware.AuditLogMiddleware(db))
	{
		admin.GET("/auth/me", authHandler.Me)

		admin.GET("/dashboard", dashboardHandler.Overview)

		admin.GET("/brands", catalogHandler.ListBrands)
		admin.GET("/brands/:id", catalogHandler.GetBrand)
		admin.POST("/brands", catalogHandler.CreateBrand)
		admin.PUT("/brands/:id", catalogHandler.UpdateBrand)
		admin.DELETE("/brands/:id", catalogHandler.DeleteBrand)
		admin.DELETE("/brands/:id/background-image", catalogHandler.DetachBrandBackground)

		admin.GET("/categories", catalogHandler.ListCategories)
		admin.GET("/categories/:id", catalogHandler.GetCategory)
		admin.POST("/categories", catalogHandler.CreateCategory)
		admin.PUT("/categories/:id", catalogHandler.UpdateCategory)
		admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)
		admin.DELETE("/categories/:id/background-image", catalogHandler.DetachCategoryBackground)

		admin.GET("/colors", catalogHandler.ListColors)
		admin.POST("/colors", catalogHandler.CreateColor)
		admin.PUT("/colors/:id", catalogHandler.UpdateColor)
		admin.DELETE("/colors/:id", catalogHandler.DeleteColor)

		admin.GET("/sizes", catalogHandler.ListSizes)
		admin.POST("/sizes", catalogHandler.CreateSize)
		admin.PUT("/sizes/:id", catalogHandler.UpdateSize)
		admin.DELETE("/sizes/:id", catalogHandler.DeleteSize)

		admin.GET("/products", productHandler.List)
		admin.GET("/products/:id", productHandler.Get)
		admin.POST("/products", productHandler.Create)
		admin.PUT("/products/:id", productHandler.Update)
		admin.DELETE("/products/:id", productHandler.Delete)
		admin.POST("/products/:id/images", middleware.UploadRateLimit(), productHandler.UploadImages)
		admin.GET("/products/:id/images", productHandler.ListImages)
		admin.PATCH("/product-images/:imageId/color", productHandler.AssignImageColor)
		admin.DELETE("/product-images/:imageId", productHandler.DeleteImage)

		admin.GET("/orders", orderHandler.List)
		admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

		admin.GET("/users", userHandler.List)
		admin.GET("/users/:id", userHandler.Get)
		admin.POST("/users", userHandler.Create)
		admin.PUT("/users/:id", userHandler.Update)
		admin.DELETE("/users/:id", userHandler.Delete)
	}

	return r
}
