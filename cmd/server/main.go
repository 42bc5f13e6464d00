package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/gourmet-grove/ordering-service/internal/config"
	"github.com/gourmet-grove/ordering-service/internal/router"
	"github.com/gourmet-grove/ordering-service/internal/service"
	"github.com/gourmet-grove/ordering-service/internal/store"
	"github.com/gourmet-grove/ordering-service/internal/websockets"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the store
	st := store.New()
	if cfg.Seed {
		if err := st.Seed(); err != nil {
			log.Fatalf("Failed to seed store: %v", err)
		}
		log.Println("Store seeded with development fixtures")
	}

	// Initialize WebSocket hub
	hub := websockets.NewHub()
	go hub.Run()

	// Initialize services and router
	svcs := service.New(st, cfg)
	r := router.New(svcs, hub)

	// The web client is served from a different origin
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	// Create HTTP server
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: corsHandler.Handler(r),
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}
