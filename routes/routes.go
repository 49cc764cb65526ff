package routes

import (
	"log"
	"net/http"

	"davidsgames/handlers"
	"davidsgames/middleware"
	"davidsgames/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	statsHandler *handlers.StatsHandler,
	scoreHandler *handlers.ScoreHandler,
	hub *services.Hub,
	jwtSecret string,
) {
	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/guestlogin", authHandler.GuestLogin)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			// Current user
			protected.GET("/auth/profile", authHandler.GetProfile)

			// User routes
			users := protected.Group("/users")
			{
				users.GET("", userHandler.ListUsers)
				users.GET("/:id", userHandler.GetUserProfile)
				users.PUT("/:id", userHandler.UpdateUser)
				users.DELETE("/:id", userHandler.DeleteUser)
			}

			// Minesweeper routes
			ms := protected.Group("/minesweeper")
			{
				ms.GET("/scores", scoreHandler.GetScores)
				ms.POST("/scores", scoreHandler.SubmitScore)
				ms.GET("/stats", statsHandler.GetStats)
				ms.POST("/stats", statsHandler.SubmitStats)
			}
		}

		// Board configuration is public static data
		api.GET("/minesweeper/levels", scoreHandler.GetLevels)
	}

	// WebSocket endpoint for the live scoreboard feed
	router.GET("/ws/scoreboard", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
			return
		}

		hub.RegisterClient(conn)
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
