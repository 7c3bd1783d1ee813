package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"brandpanel/internal/config"
	"brandpanel/internal/database"
	"brandpanel/internal/handlers"
	"brandpanel/internal/middleware"
	"brandpanel/internal/notify"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureBrandUserIndexes(db); err != nil {
		log.Printf("brand user index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}

	notifier := notify.NewQueueSender(config.AppEnv.RedisAddr)
	if config.AppEnv.NotifyWebhookURL != "" {
		webhook := notify.NewWebhookClient(config.AppEnv.NotifyWebhookURL)
		for i := 0; i < config.AppEnv.NotifyWorkerCount; i++ {
			go notifier.RunWorker(context.Background(), webhook)
		}
	} else {
		log.Println("NOTIFY_WEBHOOK_URL not set, notifications stay queued")
	}

	r := gin.Default()
	r.LoadHTMLGlob("templates/**/*")
	r.Static("/public", "./public")

	r.GET("/", handlers.Home())
	r.GET("/brand/login", handlers.BrandLoginPage)
	r.GET("/brand/products", handlers.BrandProductsPage)
	r.GET("/brand/orders", handlers.BrandOrdersPage)
	r.GET("/brand/profile", handlers.BrandProfilePage)

	r.POST("/auth/register", handlers.Register(db))
	r.POST("/auth/login", handlers.Login(
		db,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
		config.AppEnv.RefreshTokenTTL,
	))
	r.GET("/auth/me", middleware.CustomerAuth(config.AppEnv.JWTSecret), handlers.GetMe(db))
	r.POST("/auth/refresh", handlers.Refresh(
		db,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
		config.AppEnv.RefreshTokenTTL,
	))
	r.POST("/auth/logout", handlers.Logout(db))

	r.POST("/brand/login", handlers.BrandLogin(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))

	r.GET("/products", handlers.GetProducts(db))
	r.GET("/categories", handlers.GetCategories(db))
	r.GET("/brands", handlers.GetBrands(db))
	r.POST("/orders", handlers.CreateOrder(db))
	r.GET("/orders", middleware.CustomerAuth(config.AppEnv.JWTSecret), handlers.GetMyOrders(db))

	brand := r.Group("/brand/api")
	brand.Use(middleware.BrandAuth(config.AppEnv.JWTSecret))
	{
		brand.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		brand.GET("/products", handlers.GetBrandProducts(db))
		brand.POST("/products", handlers.CreateBrandProduct(db))
		brand.PUT("/products/:id", handlers.UpdateBrandProduct(db))
		brand.DELETE("/products/:id", handlers.DeleteBrandProduct(db))

		brand.GET("/orders", handlers.GetBrandOrders(db))
		brand.PUT("/orders/:id/items/:itemId/status", handlers.UpdateOrderItemStatus(db, notifier))

		brand.GET("/profile", handlers.GetBrandProfile(db))
		brand.PUT("/profile", handlers.UpdateBrandProfile(db))
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
