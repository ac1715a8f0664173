package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/prabinsunar/library-app/internal/catalog"
	"github.com/prabinsunar/library-app/internal/database"
	"github.com/prabinsunar/library-app/internal/database/authors"
	"github.com/prabinsunar/library-app/internal/database/books"
	"github.com/prabinsunar/library-app/internal/database/genres"
	"github.com/prabinsunar/library-app/internal/database/instances"
	"github.com/prabinsunar/library-app/internal/database/integrity"
	"github.com/prabinsunar/library-app/internal/http"
	"github.com/prabinsunar/library-app/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ catalog.AuthorStore = (*authors.Repository)(nil)
var _ catalog.GenreStore = (*genres.Repository)(nil)
var _ catalog.BookStore = (*books.Repository)(nil)
var _ catalog.BookInstanceStore = (*instances.Repository)(nil)

// =============================================================================
// Maintenance
// =============================================================================

// IntegrityChecker implementations
var _ tasks.IntegrityChecker = (*integrity.Repository)(nil)

// IntegrityQueue implementations
var _ http.IntegrityQueue = (*tasks.Client)(nil)
var _ http.IntegrityQueue = (*tasks.InlineIntegrityRunner)(nil)

// =============================================================================
// Health
// =============================================================================

var _ http.Pinger = (*database.Database)(nil)
