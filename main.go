package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"conduit-api/config"
	"conduit-api/handlers"
	"conduit-api/helper"
	"conduit-api/middleware"
	"conduit-api/repositories"
	"conduit-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo, tagRepo, userRepo, commentRepo)
	profileService := services.NewProfileService(userRepo)
	tagService := services.NewTagService(tagRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper)
	profileHandler := handlers.NewProfileHandler(profileService, httpHelper)
	tagHandler := handlers.NewTagHandler(tagService, httpHelper)

	// Setup router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	api := router.Group("/api")
	{
		// Users
		api.POST("/users", authHandler.Register)
		api.POST("/users/login", authHandler.Login)
		api.GET("/user", middleware.AuthMiddleware(), authHandler.GetCurrentUser)
		api.PUT("/user", middleware.AuthMiddleware(), authHandler.UpdateUser)

		// Profiles
		profiles := api.Group("/profiles")
		{
			profiles.GET("/:username", middleware.OptionalAuthMiddleware(), profileHandler.GetProfile)
			profiles.POST("/:username/follow", middleware.AuthMiddleware(), profileHandler.Follow)
			profiles.DELETE("/:username/follow", middleware.AuthMiddleware(), profileHandler.Unfollow)
		}

		// Articles
		articles := api.Group("/articles")
		{
			articles.GET("", middleware.OptionalAuthMiddleware(), articleHandler.GetArticles)
			articles.GET("/feed", middleware.AuthMiddleware(), articleHandler.GetFeed)
			articles.POST("", middleware.AuthMiddleware(), articleHandler.CreateArticle)
			articles.GET("/:slug", middleware.OptionalAuthMiddleware(), articleHandler.GetArticle)
			articles.PUT("/:slug", middleware.AuthMiddleware(), articleHandler.UpdateArticle)
			articles.DELETE("/:slug", middleware.AuthMiddleware(), articleHandler.DeleteArticle)
			articles.POST("/:slug/favorite", middleware.AuthMiddleware(), articleHandler.FavoriteArticle)
			articles.DELETE("/:slug/favorite", middleware.AuthMiddleware(), articleHandler.UnfavoriteArticle)
			articles.GET("/:slug/comments", middleware.OptionalAuthMiddleware(), articleHandler.GetComments)
			articles.POST("/:slug/comments", middleware.AuthMiddleware(), articleHandler.AddComment)
			articles.DELETE("/:slug/comments/:id", middleware.AuthMiddleware(), articleHandler.DeleteComment)
		}

		// Tags
		api.GET("/tags", tagHandler.GetTags)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
