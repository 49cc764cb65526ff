package main

import (
	"log"

	"davidsgames/config"
	"davidsgames/handlers"
	"davidsgames/middleware"
	"davidsgames/models"
	"davidsgames/routes"
	"davidsgames/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.MinesweeperScore{},
		&models.MinesweeperStat{},
		&models.MinesweeperAchievement{},
		&models.UserMinesweeperAchievement{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed roles, the guest account and the achievement catalog
	if err := services.SeedReferenceData(db); err != nil {
		log.Fatal("Failed to seed reference data:", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret)
	userService := services.NewUserService(db)
	statsService := services.NewStatsService(db)
	scoreService := services.NewScoreService(db, redisClient)

	// Initialize WebSocket hub for the live scoreboard
	hub := services.NewHub()
	go hub.Run()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	statsHandler := handlers.NewStatsHandler(statsService, hub)
	scoreHandler := handlers.NewScoreHandler(scoreService, hub)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, userHandler, statsHandler, scoreHandler, hub, cfg.JWTSecret)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
