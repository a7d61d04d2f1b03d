package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rohits-web03/portfolio-server/internal/api"
	"github.com/rohits-web03/portfolio-server/internal/auth"
	"github.com/rohits-web03/portfolio-server/internal/config"
	"github.com/rohits-web03/portfolio-server/internal/repositories"
)

func main() {
	cfg := config.Load()

	db, err := repositories.Connect(cfg.DB_URL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret)
	store := repositories.NewUploadStore(cfg.UploadDir)

	handler := api.SetupRouter(cfg, db, tokens, store)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: handler,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting portfolio server on port: %s", cfg.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", cfg.Port, err)
	}
}
