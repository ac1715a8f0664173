// Package books provides database operations for catalog books and their
// genre references.
//
// Reads come in two shapes. Bare reads (GetByID) return the stored references
// as ids only: AuthorID is set and each entry of Genres carries just its ID.
// Populated reads (GetPopulated, ListPopulated) resolve Author and Genres.
//
// # Usage
//
//	repo := books.NewRepository(db.DB)
//	book, err := repo.GetPopulated(ctx, id)
package books

import (
	"context"

	"gorm.io/gorm"

	"github.com/prabinsunar/library-app/internal/database"
	"github.com/prabinsunar/library-app/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func orderGenres(db *gorm.DB) *gorm.DB {
	return db.Order("genres.name ASC")
}

// ListPopulated returns every book ordered by title with its author and genres resolved.
func (r *Repository) ListPopulated(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genres", orderGenres).
		Order("title ASC").
		Find(&books).Error
	return books, database.TranslateError("list books", err)
}

// GetByID returns the bare book: references are left as ids.
func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Book, error) {
	var book entities.Book
	db := r.db.WithContext(ctx)
	if err := db.Where("id = ?", id).First(&book).Error; err != nil {
		return nil, database.TranslateError("get book", err)
	}

	var genreIDs []string
	err := db.Model(&entities.BookGenre{}).
		Where("book_id = ?", id).
		Order("position ASC").
		Pluck("genre_id", &genreIDs).Error
	if err != nil {
		return nil, database.TranslateError("get book genres", err)
	}

	book.Genres = make([]entities.Genre, 0, len(genreIDs))
	for _, genreID := range genreIDs {
		book.Genres = append(book.Genres, entities.Genre{ID: genreID})
	}
	return &book, nil
}

// GetPopulated returns the book with Author and Genres resolved. A dangling
// author reference leaves Author nil.
func (r *Repository) GetPopulated(ctx context.Context, id string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genres", orderGenres).
		Where("id = ?", id).
		First(&book).Error
	if err != nil {
		return nil, database.TranslateError("get book", err)
	}
	return &book, nil
}

// ListByAuthor returns the books written by the author, ordered by title.
func (r *Repository) ListByAuthor(ctx context.Context, authorID string) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("title ASC").
		Find(&books).Error
	return books, database.TranslateError("list books by author", err)
}

// ListByGenre returns the books that reference the genre, ordered by title.
func (r *Repository) ListByGenre(ctx context.Context, genreID string) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).
		Joins("JOIN "+entities.BookGenresTable+" ON "+entities.BookGenresTable+".book_id = books.id").
		Where(entities.BookGenresTable+".genre_id = ?", genreID).
		Order("books.title ASC").
		Find(&books).Error
	return books, database.TranslateError("list books by genre", err)
}

// Create inserts the book and its genre references in one transaction.
// Only the ids in book.Genres are used.
func (r *Repository) Create(ctx context.Context, book *entities.Book) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Author", "Genres").Create(book).Error; err != nil {
			return err
		}
		return insertGenreRefs(tx, book.ID, book.GenreIDs())
	})
	return database.TranslateError("create book", err)
}

// Update replaces the stored book, genre references included.
func (r *Repository) Update(ctx context.Context, book *entities.Book) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Book{}).
			Where("id = ?", book.ID).
			Select("title", "author_id", "summary", "isbn").
			Updates(map[string]any{
				"title":     book.Title,
				"author_id": book.AuthorID,
				"summary":   book.Summary,
				"isbn":      book.ISBN,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entities.ErrNotFound
		}
		if err := tx.Where("book_id = ?", book.ID).Delete(&entities.BookGenre{}).Error; err != nil {
			return err
		}
		return insertGenreRefs(tx, book.ID, book.GenreIDs())
	})
	if err == entities.ErrNotFound {
		return err
	}
	return database.TranslateError("update book", err)
}

// DeleteIfUnreferenced removes the book and its genre references only while
// no copy references the book.
func (r *Repository) DeleteIfUnreferenced(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ?", id).
			Where("NOT EXISTS (SELECT 1 FROM book_instances WHERE book_instances.book_id = ?)", id).
			Delete(&entities.Book{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Where("book_id = ?", id).Delete(&entities.BookGenre{}).Error
	})
	if err != nil {
		return false, database.TranslateError("delete book", err)
	}
	return deleted, nil
}

// Count returns the number of stored books.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Book{}).Count(&count).Error
	return count, database.TranslateError("count books", err)
}

func insertGenreRefs(tx *gorm.DB, bookID string, genreIDs []string) error {
	if len(genreIDs) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(genreIDs))
	refs := make([]entities.BookGenre, 0, len(genreIDs))
	for _, genreID := range genreIDs {
		if seen[genreID] {
			continue
		}
		seen[genreID] = true
		refs = append(refs, entities.BookGenre{BookID: bookID, GenreID: genreID, Position: len(refs)})
	}
	return tx.Create(&refs).Error
}
