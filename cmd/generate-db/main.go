// Command generate-db produces a fresh mock snapshot and persists it,
// replacing whatever snapshot the database held before. The server refuses
// to start until this has run at least once.
package main

import (
	"github.com/alias8/invoices-demo-be/internal/config"
	"github.com/alias8/invoices-demo-be/internal/database"
	"github.com/alias8/invoices-demo-be/internal/logger"
	"github.com/alias8/invoices-demo-be/internal/mockdata"
	"github.com/alias8/invoices-demo-be/internal/services"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.LogLevel)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	data, err := mockdata.Generate()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate mock data")
	}

	if err := services.NewSnapshotService(db).Save(data); err != nil {
		log.Fatal().Err(err).Msg("Failed to save snapshot")
	}

	log.Info().
		Int("users", len(data.Users)).
		Int("accounts", len(data.Accounts)).
		Int("customers", len(data.Customers)).
		Int("invoices", len(data.Invoices)).
		Str("path", cfg.DatabasePath).
		Msg("Generated snapshot")
}
