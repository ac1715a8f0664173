package entrypoint

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/prabinsunar/library-app/internal/catalog"
	"github.com/prabinsunar/library-app/internal/config"
	"github.com/prabinsunar/library-app/internal/database"
	"github.com/prabinsunar/library-app/internal/database/authors"
	"github.com/prabinsunar/library-app/internal/database/books"
	"github.com/prabinsunar/library-app/internal/database/genres"
	"github.com/prabinsunar/library-app/internal/database/instances"
	"github.com/prabinsunar/library-app/internal/database/integrity"
	http_controllers "github.com/prabinsunar/library-app/internal/http"
	"github.com/prabinsunar/library-app/internal/logging"
	"github.com/prabinsunar/library-app/internal/scheduler"
	"github.com/prabinsunar/library-app/internal/security"
	"github.com/prabinsunar/library-app/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Dur("timeout", timeout).Msg("Shutdown Server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server Shutdown")
	}

	log.Info().Msg("Server exiting")
}

func Run(cfg *config.Config, version string) {
	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatal().Err(err).Msg("Invalid logging configuration")
	}
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.Info().Str("version", version).Msg("Starting Local Library")

	db, err := database.Open(database.Options{
		Driver: cfg.Database.Driver,
		Path:   cfg.Database.Path,
		DSN:    cfg.Database.DSN,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database")
		}
	}()

	cat := catalog.New(
		authors.NewRepository(db.DB),
		genres.NewRepository(db.DB),
		books.NewRepository(db.DB),
		instances.NewRepository(db.DB),
	)
	checker := integrity.NewRepository(db.DB)

	// Background tasks share the catalog's shutdown context
	bgCtx, bgCancel := context.WithCancel(context.Background())
	defer bgCancel()

	var integrityQueue http_controllers.IntegrityQueue
	var taskClient *tasks.Client
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize task queue")
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Error().Err(err).Msg("Error closing task client")
			}
		}()

		taskClient.Register(tasks.NewCheckIntegrityQueue(checker))
		go taskClient.Start(bgCtx)
		integrityQueue = taskClient
	} else {
		log.Info().Msg("Task queue disabled, integrity checks run inline")
		integrityQueue = tasks.NewInlineIntegrityRunner(checker)
	}

	var sweep *scheduler.IntegritySweepScheduler
	if cfg.IntegritySweep.Enabled {
		sweep = scheduler.NewIntegritySweepScheduler(cfg.IntegritySweep.Schedule, func(ctx context.Context) error {
			_, err := integrityQueue.EnqueueIntegrityCheck(ctx, tasks.CheckIntegrityTask{Repair: true, Source: "schedule"})
			return err
		})
		if err := sweep.Start(bgCtx); err != nil {
			log.Error().Err(err).Msg("Integrity sweep disabled")
			sweep = nil
		}
	}

	sessionManager, err := security.NewSessionManager(sessionDB(cfg, db), security.SessionConfig{
		Lifetime:      cfg.Security.SessionLifetime,
		SecureCookies: cfg.Security.SecureCookies,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize session manager")
	}

	csrfSecret := decodeSecret(cfg.Security.CSRFSecret)
	if len(csrfSecret) == 0 {
		log.Warn().Msg("CSRF_SECRET is not set, CSRF protection is disabled")
	}

	var rateLimiter *security.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = security.NewRateLimiter(security.RateLimitConfig{
			RPS:   cfg.RateLimit.RPS,
			Burst: cfg.RateLimit.Burst,
		})
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Catalog:        cat,
		Database:       db,
		CSRFSecret:     csrfSecret,
		SecureCookies:  cfg.Security.SecureCookies,
		SessionManager: sessionManager,
		RateLimiter:    rateLimiter,
		Integrity:      integrityQueue,
		Version:        version,
	})

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if sweep != nil {
			sweep.Stop()
		}
		if taskClient != nil {
			taskClient.Stop(ctx)
		}
		bgCancel()
		if rateLimiter != nil {
			rateLimiter.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}

// sessionDB keeps sessions in the catalog's SQLite file. PostgreSQL
// deployments keep them in memory.
func sessionDB(cfg *config.Config, db *database.Database) *sql.DB {
	if cfg.Database.Driver != database.DriverSQLite {
		return nil
	}
	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Warn().Err(err).Msg("Sessions fall back to memory")
		return nil
	}
	return sqlDB
}

// decodeSecret accepts a hex-encoded secret, or uses the raw bytes when it is not hex.
func decodeSecret(secret string) []byte {
	if secret == "" {
		return nil
	}
	if decoded, err := hex.DecodeString(secret); err == nil {
		return decoded
	}
	return []byte(secret)
}
