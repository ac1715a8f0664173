package cli

import (
	flag "github.com/spf13/pflag"

	"github.com/prabinsunar/library-app/internal/config"
	"github.com/prabinsunar/library-app/internal/database"
)

// DatabaseFlags selects the catalog store for a command. Defaults come from
// the environment, so the flags only need to be given to override it.
type DatabaseFlags struct {
	Driver string
	Path   string
	DSN    string
}

func (f *DatabaseFlags) register(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&f.Driver, "driver", cfg.Database.Driver, "Database driver: sqlite or postgres")
	fs.StringVarP(&f.Path, "db", "d", cfg.Database.Path, "Path to the SQLite database file")
	fs.StringVar(&f.DSN, "dsn", cfg.Database.DSN, "PostgreSQL connection string (defaults to DATABASE_DSN)")
}

func (f DatabaseFlags) open() (*database.Database, error) {
	return database.Open(database.Options{Driver: f.Driver, Path: f.Path, DSN: f.DSN})
}
