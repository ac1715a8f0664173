package http

import (
	"context"

	"github.com/prabinsunar/library-app/internal/catalog"
	"github.com/prabinsunar/library-app/internal/security"
	"github.com/prabinsunar/library-app/internal/tasks"
)

// IntegrityQueue starts an integrity check. Implemented by tasks.Client and
// tasks.InlineIntegrityRunner.
type IntegrityQueue interface {
	EnqueueIntegrityCheck(ctx context.Context, task tasks.CheckIntegrityTask) (string, error)
}

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	Catalog  *catalog.Catalog
	Database Pinger

	// Security. An empty CSRFSecret disables CSRF protection; nil
	// SessionManager disables flash messages; nil RateLimiter disables limiting.
	CSRFSecret     []byte
	SecureCookies  bool
	SessionManager *security.SessionManager
	RateLimiter    *security.RateLimiter

	// Integrity check trigger (optional)
	Integrity IntegrityQueue

	// Application info
	Version string
}
