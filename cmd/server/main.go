package main

import (
	"fmt"
	"log"
	"os"

	"cache-service-api/internal/audit"
	"cache-service-api/internal/cache"
	"cache-service-api/internal/config"
	"cache-service-api/internal/database"
	"cache-service-api/internal/handlers"
	"cache-service-api/internal/metrics"
	"cache-service-api/internal/realtime"
	"cache-service-api/internal/routes"
)

func main() {
	// Load configuration (defaults apply when the file is absent)
	configPath := os.Getenv("CACHE_CONFIG")
	if configPath == "" {
		configPath = "cache-service.toml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// Build the cache engine
	engine, err := cache.New(cfg.Cache.Capacity)
	if err != nil {
		log.Fatal("Failed to create cache engine: ", err)
	}

	// Wire event subscribers: metrics, websocket fan-out, audit trail
	metrics.Attach(engine.Events())
	realtime.GetHub().Attach(engine.Events())

	var recorder *audit.Recorder
	if cfg.Audit.Enabled {
		database.InitDB(cfg.Audit.Path)
		recorder = audit.NewRecorder(database.GetDB())
		recorder.Attach(engine.Events())
		defer recorder.Close()
	}

	handlers.Init(engine, cfg, recorder)

	// Setup the routes (public and protected routes)
	ginRoutes := routes.SetupRoutes()

	// Start server
	port := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server starting on port %s", port)
	log.Println("API endpoints:")
	log.Println("  POST   /api/login")
	log.Println("  POST   /api/cache")
	log.Println("  GET    /api/cache/:key")
	log.Println("  PUT    /api/cache/:key")
	log.Println("  DELETE /api/cache/:key")
	log.Println("  POST   /api/execute")
	log.Println("  GET    /api/audit/events")
	log.Println("  GET    /api/events/ws")
	log.Println("  GET    /metrics")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
