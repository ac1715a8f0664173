package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/prabinsunar/library-app/internal/entities"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options selects the storage engine. Path is used by SQLite, DSN by PostgreSQL.
type Options struct {
	Driver   string
	Path     string
	DSN      string
	LogLevel logger.LogLevel
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens (and migrates) a SQLite database at dbPath.
func NewDatabase(dbPath string) (*Database, error) {
	return Open(Options{Driver: DriverSQLite, Path: dbPath})
}

// Open connects to the configured store and auto-migrates the catalog tables.
// The returned handle must be closed by the caller.
func Open(opts Options) (*Database, error) {
	dialector, err := dialectorFor(opts)
	if err != nil {
		return nil, err
	}

	logLevel := opts.LogLevel
	if logLevel == 0 {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// References are plain ids; the delete guard owns referential rules.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.SetupJoinTable(&entities.Book{}, "Genres", &entities.BookGenre{}); err != nil {
		return nil, fmt.Errorf("failed to set up book genres: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Genre{},
		&entities.Book{},
		&entities.BookGenre{},
		&entities.BookInstance{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info().Str("driver", opts.Driver).Msg("Database initialized")

	return &Database{DB: db}, nil
}

func dialectorFor(opts Options) (gorm.Dialector, error) {
	switch opts.Driver {
	case DriverSQLite, "":
		if opts.Path == "" {
			return nil, errors.New("sqlite database path is not set")
		}
		return sqlite.Open(sqliteDSN(opts.Path)), nil
	case DriverPostgres:
		if opts.DSN == "" {
			return nil, errors.New("postgres DSN is not set")
		}
		return postgres.Open(opts.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}

// sqliteDSN adds a busy timeout so concurrent readers wait for a writer instead of failing.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_busy_timeout=5000"
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks connectivity with the underlying store.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// TranslateError maps gorm's not-found error onto entities.ErrNotFound and
// wraps everything else with the failing operation.
func TranslateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
