// Package integrity finds references that point at records which no longer exist.
//
// The catalog stores references as plain ids without foreign keys, so a crash
// between writes or a manual edit can leave dangling ids behind. Check only
// reports them; Repair removes the join rows that point nowhere, which is the
// only kind of dangling reference that can be dropped without losing data.
package integrity

import (
	"context"

	"gorm.io/gorm"

	"github.com/prabinsunar/library-app/internal/database"
	"github.com/prabinsunar/library-app/internal/entities"
)

// DanglingGenreRef is a book/genre join row whose genre is missing.
type DanglingGenreRef struct {
	BookID  string `json:"book_id"`
	GenreID string `json:"genre_id"`
}

// Report lists every dangling reference found by Check.
type Report struct {
	BooksWithoutAuthor []string           `json:"books_without_author"`
	DanglingGenreRefs  []DanglingGenreRef `json:"dangling_genre_refs"`
	CopiesWithoutBook  []string           `json:"copies_without_book"`
}

// Clean reports whether no dangling references were found.
func (r Report) Clean() bool {
	return len(r.BooksWithoutAuthor) == 0 && len(r.DanglingGenreRefs) == 0 && len(r.CopiesWithoutBook) == 0
}

// Total returns the number of dangling references.
func (r Report) Total() int {
	return len(r.BooksWithoutAuthor) + len(r.DanglingGenreRefs) + len(r.CopiesWithoutBook)
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Check scans the catalog for dangling references.
func (r *Repository) Check(ctx context.Context) (*Report, error) {
	db := r.db.WithContext(ctx)
	report := &Report{
		BooksWithoutAuthor: []string{},
		DanglingGenreRefs:  []DanglingGenreRef{},
		CopiesWithoutBook:  []string{},
	}

	err := db.Model(&entities.Book{}).
		Where("NOT EXISTS (SELECT 1 FROM authors WHERE authors.id = books.author_id)").
		Order("books.id ASC").
		Pluck("books.id", &report.BooksWithoutAuthor).Error
	if err != nil {
		return nil, database.TranslateError("check books", err)
	}

	err = db.Model(&entities.BookGenre{}).
		Select("book_id", "genre_id").
		Where("NOT EXISTS (SELECT 1 FROM genres WHERE genres.id = " + entities.BookGenresTable + ".genre_id)").
		Order("book_id ASC, genre_id ASC").
		Scan(&report.DanglingGenreRefs).Error
	if err != nil {
		return nil, database.TranslateError("check genre references", err)
	}

	err = db.Model(&entities.BookInstance{}).
		Where("NOT EXISTS (SELECT 1 FROM books WHERE books.id = book_instances.book_id)").
		Order("book_instances.id ASC").
		Pluck("book_instances.id", &report.CopiesWithoutBook).Error
	if err != nil {
		return nil, database.TranslateError("check book instances", err)
	}

	return report, nil
}

// Repair deletes join rows whose genre no longer exists and returns how many were removed.
func (r *Repository) Repair(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM genres WHERE genres.id = " + entities.BookGenresTable + ".genre_id)").
		Delete(&entities.BookGenre{})
	if result.Error != nil {
		return 0, database.TranslateError("repair genre references", result.Error)
	}
	return result.RowsAffected, nil
}
