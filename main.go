package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alias8/invoices-demo-be/internal/api"
	"github.com/alias8/invoices-demo-be/internal/config"
	"github.com/alias8/invoices-demo-be/internal/database"
	"github.com/alias8/invoices-demo-be/internal/logger"
	"github.com/alias8/invoices-demo-be/internal/monitoring"
	"github.com/alias8/invoices-demo-be/internal/services"
	"github.com/alias8/invoices-demo-be/internal/session"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.LogLevel)

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Load the generated snapshot. Without data there is nothing to serve.
	snapshotService := services.NewSnapshotService(db)
	snapshot, err := snapshotService.Load()
	if err != nil {
		if errors.Is(err, services.ErrSnapshotMissing) {
			log.Fatal().Err(err).Msg("No snapshot in database, run 'go run ./cmd/generate-db' first")
		}
		log.Fatal().Err(err).Msg("Failed to load snapshot")
	}
	log.Info().
		Int("users", len(snapshot.Users)).
		Int("accounts", len(snapshot.Accounts)).
		Int("customers", len(snapshot.Customers)).
		Int("invoices", len(snapshot.Invoices)).
		Msg("Loaded snapshot")

	// Set up the session store around the canonical snapshot
	sessions := session.NewStore(snapshot)

	// Set up and run the background session reaper
	reaper, err := monitoring.NewSessionReaper(sessions, cfg.SessionTTL, cfg.SweepSchedule)
	if err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.SweepSchedule).Msg("Invalid session sweep schedule")
	}
	go reaper.Run()

	// Set up services
	userService := services.NewUserService(sessions)
	accountService := services.NewAccountService(sessions)
	customerService := services.NewCustomerService(sessions)
	invoiceService := services.NewInvoiceService(sessions)

	// Set up router
	router := api.NewRouter(cfg, userService, accountService, customerService, invoiceService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	reaper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
