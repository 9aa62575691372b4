package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/api"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/cache"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/config"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/database"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/marketdata"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/scheduler"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Select the cache backend
	var store cache.Store
	switch cfg.Cache.Backend {
	case "redis":
		store = cache.NewRedisStore(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		log.Printf("Using redis cache at %s", cfg.Cache.RedisAddr)
	case "memory":
		store = cache.NewMemoryStore()
		log.Println("Using in-memory cache (not durable)")
	default:
		store = cache.NewSQLiteStore(db)
	}

	entries, err := cache.NewEntryStore(store, cfg.Cache.EncryptionKey)
	if err != nil {
		log.Fatalf("Failed to create cache entry store: %v", err)
	}

	// Create gateway and services
	gateway := marketdata.NewGatewayClient(cfg.Gateway.BaseURL)
	syncService := service.NewSyncService(gateway, entries)
	advisoryService := service.NewAdvisoryService(gateway, syncService, entries)
	systemService := service.NewSystemService(db)

	// Background cache warming
	sched := scheduler.New(advisoryService, cfg.Scheduler, cfg.Advisory)
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Create router
	router := api.NewRouter(systemService, advisoryService, sched, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
