/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the budget engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (best effort) and parse command-line flags
  2. Initialize SQLite store
  3. Construct the holiday, rate card and settings collaborators
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS (env fallback in parentheses):
  -port      HTTP server port (PORT, default: 8080)
  -db        SQLite database path (DB_PATH, default: budget.db)
             Use ":memory:" for an in-memory database
  -data-dir  Directory for the holiday cache and fringe settings
             (DATA_DIR, default: ./data)
  -rates     Extracted award rates JSON file (RATES_PATH,
             default: <data-dir>/award_rates.json)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  ./server -db="./data/budget.db"
  ./server -port=3000 -data-dir=/var/lib/budget

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Database implementation
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
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/callsheet/budget-engine/api"
	"github.com/callsheet/budget-engine/factory"
	"github.com/callsheet/budget-engine/holiday"
	"github.com/callsheet/budget-engine/ratecard"
	"github.com/callsheet/budget-engine/store/sqlite"
)

func main() {
	// .env is optional; flags and real environment win.
	_ = godotenv.Load()

	port := flag.Int("port", envInt("PORT", 8080), "HTTP server port")
	dbPath := flag.String("db", envStr("DB_PATH", "budget.db"), "SQLite database path")
	dataDir := flag.String("data-dir", envStr("DATA_DIR", "./data"), "directory for holiday cache and settings")
	ratesPath := flag.String("rates", envStr("RATES_PATH", ""), "extracted award rates JSON file")
	flag.Parse()

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data dir: %v", err)
	}
	if *ratesPath == "" {
		*ratesPath = filepath.Join(*dataDir, "award_rates.json")
	}

	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	holidays := holiday.NewService(holiday.NewAPISource(), *dataDir)
	rateCard := ratecard.Load(*ratesPath)
	settings := factory.NewSettingsStore(filepath.Join(*dataDir, "fringe_settings.json"))

	handler := api.NewHandler(store, holidays, rateCard, settings)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

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

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n
		}
	}
	return fallback
}
