package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"sqlconsole/internal/config"
	"sqlconsole/internal/database"
	"sqlconsole/internal/handlers"
	"sqlconsole/internal/repositories"
	"sqlconsole/internal/routes"
	"sqlconsole/internal/services"
)

func NewServer() *http.Server {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Dependency injection
	userRepo := repositories.NewUserRepository(pool)
	connRepo := repositories.NewConnectionRepository(pool)
	historyRepo := repositories.NewQueryHistoryRepository(pool)

	authService := services.NewAuthService(userRepo)
	connectionService := services.NewConnectionService(connRepo, cfg.QueryTimeout)
	queryService := services.NewQueryService(connRepo, historyRepo, cfg.QueryTimeout)

	authHandler := handlers.NewAuthHandler(authService)
	connectionHandler := handlers.NewConnectionHandler(connectionService)
	queryHandler := handlers.NewQueryHandler(queryService)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.RegisterRoutes(router, authHandler, connectionHandler, queryHandler)

	// The write timeout must outlive the ad-hoc query deadline, or slow
	// queries would be cut off mid-response.
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.QueryTimeout + 10*time.Second,
	}
}
