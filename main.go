package main

import (
	"log"
	"net/http"
	"os"

	"banner-service/config"
	"banner-service/handlers"
	"banner-service/middleware"
	"banner-service/repositories"
	"banner-service/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database and cache
	db := config.InitDB()
	bannerCache := config.InitCache()
	defer bannerCache.Close()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	bannerRepo := repositories.NewBannerRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	featureRepo := repositories.NewFeatureRepository(db)

	// Background worker for bulk deletions
	queue := services.NewTaskQueue(bannerRepo, 64)
	queue.Start()
	defer queue.Stop()

	// Initialize services
	authService := services.NewAuthService(userRepo)
	bannerService := services.NewBannerService(bannerRepo, tagRepo, featureRepo, bannerCache, queue)
	tagService := services.NewTagService(tagRepo)
	featureService := services.NewFeatureService(featureRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	bannerHandler := handlers.NewBannerHandler(bannerService)
	tagHandler := handlers.NewTagHandler(tagService)
	featureHandler := handlers.NewFeatureHandler(featureService)

	// Setup router
	router := gin.Default()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Auth routes (public)
	router.POST("/register", authHandler.Register)
	router.POST("/register_admin", authHandler.RegisterAdmin)
	router.POST("/token", authHandler.Token)

	// Directory listings (public)
	router.GET("/tags", tagHandler.GetTags)
	router.GET("/features", featureHandler.GetFeatures)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/users/me", authHandler.Me)

		protected.GET("/user_banner", bannerHandler.GetUserBanner)

		protected.GET("/banner", bannerHandler.GetBanners)
		protected.POST("/banner", bannerHandler.CreateBanner)
		protected.PATCH("/banner/:id", bannerHandler.UpdateBanner)
		protected.DELETE("/banner/delete", bannerHandler.DeleteBanners)
		protected.DELETE("/banner/:id", bannerHandler.DeleteBanner)

		protected.POST("/tag", tagHandler.CreateTag)
		protected.DELETE("/tag/:id", tagHandler.DeleteTag)

		protected.POST("/feature", featureHandler.CreateFeature)
		protected.DELETE("/feature/:id", featureHandler.DeleteFeature)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
