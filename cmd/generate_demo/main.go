// Command generate_demo creates a demo catalog database with the sample authors,
// genres, books and copies used by the seed command.
// Usage: go run cmd/generate_demo/main.go [--db path/to/demo.db]
package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"github.com/prabinsunar/library-app/internal/cli"
	"github.com/prabinsunar/library-app/internal/database"
	"github.com/prabinsunar/library-app/internal/logging"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	if err := logging.Setup("info", "console"); err != nil {
		log.Fatal().Err(err).Msg("Failed to configure logging")
	}

	log.Info().Str("path", *dbPath).Msg("Generating demo database")

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Msg("Failed to remove existing demo database")
	}
	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create demo directory")
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create database")
	}
	defer db.Close()

	result, err := cli.Seed(context.Background(), cli.NewCatalog(db), false)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed demo database")
	}

	log.Info().
		Int("authors", result.Authors).
		Int("genres", result.Genres).
		Int("books", result.Books).
		Int("copies", result.Instances).
		Msg("Demo database generated successfully")
}
