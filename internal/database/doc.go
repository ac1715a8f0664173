// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, driver selection, migrations
//	├── authors/         # Author CRUD and guarded delete
//	├── genres/          # Genre CRUD, lookup by name, guarded delete
//	├── books/           # Book CRUD, genre references, guarded delete
//	├── instances/       # Book copy CRUD and status counts
//	└── integrity/       # Dangling reference detection
//
// # Using Sub-packages
//
//	db, err := database.Open(database.Options{Driver: database.DriverSQLite, Path: "./library.db"})
//
//	authorsRepo := authors.NewRepository(db.DB)
//	booksRepo := books.NewRepository(db.DB)
//
//	author, err := authorsRepo.GetByID(ctx, id)
//	book, err := booksRepo.GetPopulated(ctx, id)
//
// # Errors
//
// Every repository returns entities.ErrNotFound for a missing record and wraps
// any other driver error with the name of the failing operation.
//
// # References
//
// References between records are plain ids. No foreign key constraints are
// created; the guarded deletes (DeleteIfUnreferenced) refuse to remove a
// record while something still points at it.
package database
