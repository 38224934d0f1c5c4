/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the garrison engine server. Handles configuration,
  dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Open the SQLite journal (optional)
  3. Seed the demo world and load the routine configuration
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port      HTTP server port (default: 8080)
  -db        SQLite journal path (default: garrison.db)
             Use ":memory:" for in-memory, "" to disable journaling
  -routines  YAML alert-routine configuration path (optional; built-in
             defaults when omitted)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the journal
  4. Exit

EXAMPLES:
  # Run with file journal
  ./server -db="./data/garrison.db"

  # Run without persistence
  ./server -db=""

  # Run with a custom routine set
  ./server -routines=./routines.yaml

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Journal implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/garrison-engine/api"
	"github.com/warp/garrison-engine/factory"
	"github.com/warp/garrison-engine/garrison"
	"github.com/warp/garrison-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "garrison.db", "SQLite journal path (empty disables journaling)")
	routinesPath := flag.String("routines", "", "YAML alert-routine configuration path")
	flag.Parse()

	// Journal (optional)
	var archive garrison.Archive = garrison.NopArchive{}
	if *dbPath != "" {
		sqlArchive, err := sqlite.New(*dbPath)
		if err != nil {
			log.Fatalf("Failed to initialize journal: %v", err)
		}
		defer sqlArchive.Close()
		archive = sqlArchive
	}

	// World
	world := api.SeedFreshGarrison()

	if *routinesPath != "" {
		cfg, err := factory.LoadAlertConfigYAML(*routinesPath)
		if err != nil {
			log.Fatalf("Failed to load routine configuration: %v", err)
		}
		orgID, _ := world.ControllingOrg()
		world.Organization(orgID).Alerts = cfg
	}

	handler := api.NewHandler(world, archive)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost:%d", *port)
		log.Printf("📊 API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
