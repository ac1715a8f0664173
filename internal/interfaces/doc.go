// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - AuthorStore, GenreStore, BookStore, BookInstanceStore: catalog persistence
//     (internal/catalog/stores.go), implemented by the repositories under
//     internal/database/.
//
// ## Maintenance Interfaces
//
//   - IntegrityChecker: dangling reference scan and repair (internal/tasks/check_integrity.go)
//   - IntegrityQueue: schedules an integrity run from HTTP or cron (internal/http/config.go).
//     The backlite-backed tasks.Client runs it in the background; InlineIntegrityRunner
//     runs it immediately when background tasks are disabled.
//
// ## Health
//
//   - Pinger: database liveness for /health (internal/http/health.go)
//
// # Adding a New Catalog Entity
//
//  1. Add the entity to internal/entities/catalog.go and register it in
//     database.Open's AutoMigrate list.
//
//  2. Create sub-package internal/database/<entity>/:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Declare the store interface in internal/catalog/stores.go and the
//     form pipeline in internal/forms/.
//
//  4. Add an HTTP controller and templates in internal/http/ and register
//     its routes in router.go.
//
//  5. Add a compile-time check:
//
//     var _ catalog.PublisherStore = (*publishers.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
