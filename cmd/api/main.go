package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"inventory-game/internal/api/handlers"
	"inventory-game/internal/api/middleware"
	"inventory-game/internal/metrics"
	"inventory-game/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	sessionTTL := 24 * time.Hour
	if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
		if parsed, err := time.ParseDuration(ttlStr); err == nil {
			sessionTTL = parsed
		} else {
			log.Printf("Invalid SESSION_TTL %q, using default %s", ttlStr, sessionTTL)
		}
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	runStore := store.NewRunStore(sessionTTL)
	metrics.Init(runStore.Len)

	gameHandler := handlers.NewGameHandler(runStore)
	simulateHandler := handlers.NewSimulateHandler()
	policyHandler := handlers.NewPolicyHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/games", gameHandler.CreateGame)
		api.GET("/games/:id", gameHandler.GetGame)
		api.POST("/games/:id/orders", gameHandler.PlaceOrder)
		api.GET("/games/:id/ledger", gameHandler.GetLedger)
		api.GET("/games/:id/export", gameHandler.ExportLedger)
		api.POST("/games/:id/reset", gameHandler.ResetGame)
		api.DELETE("/games/:id", gameHandler.DeleteGame)

		api.POST("/simulate", simulateHandler.Run)
		api.POST("/simulate/compare", simulateHandler.Compare)

		api.GET("/policies", policyHandler.ListPolicies)
	}

	// Serve static files from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s (session TTL %s)", addr, sessionTTL)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
