package main

import (
	"log"
	"net/http"

	"fleetops/internal/config"
	"fleetops/internal/logger"
	"fleetops/internal/middleware"
	"fleetops/internal/routes"
	"fleetops/internal/store"
)

func main() {
	// Initialize structured logging to stdout and a rotating file
	logger.Setup()

	cfg := config.Load()

	// Connect to the database and migrate the schema
	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Setup Gin router against the durable store
	r := routes.SetupRouter(store.NewGormStore(db))

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at %s", cfg.ServerAddr)
	log.Fatal(http.ListenAndServe(cfg.ServerAddr, handler))
}
