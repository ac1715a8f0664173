// Package authors provides database operations for catalog authors.
//
// # Usage
//
//	repo := authors.NewRepository(db.DB)
//	author, err := repo.GetByID(ctx, id)
package authors

import (
	"context"

	"gorm.io/gorm"

	"github.com/prabinsunar/library-app/internal/database"
	"github.com/prabinsunar/library-app/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every author ordered by family name.
func (r *Repository) List(ctx context.Context) ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.WithContext(ctx).Order("family_name ASC, first_name ASC").Find(&authors).Error
	return authors, database.TranslateError("list authors", err)
}

// GetByID returns entities.ErrNotFound when no author has the id.
func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&author).Error; err != nil {
		return nil, database.TranslateError("get author", err)
	}
	return &author, nil
}

// Create inserts a new author and assigns its id.
func (r *Repository) Create(ctx context.Context, author *entities.Author) error {
	return database.TranslateError("create author", r.db.WithContext(ctx).Create(author).Error)
}

// Update replaces every stored field of the author with the given values.
func (r *Repository) Update(ctx context.Context, author *entities.Author) error {
	result := r.db.WithContext(ctx).Model(&entities.Author{}).
		Where("id = ?", author.ID).
		Select("first_name", "family_name", "date_of_birth", "date_of_death").
		Updates(author)
	if result.Error != nil {
		return database.TranslateError("update author", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}

// DeleteIfUnreferenced removes the author only while no book references it.
// It reports false when nothing was deleted: the author is absent or still referenced.
func (r *Repository) DeleteIfUnreferenced(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("NOT EXISTS (SELECT 1 FROM books WHERE books.author_id = ?)", id).
		Delete(&entities.Author{})
	if result.Error != nil {
		return false, database.TranslateError("delete author", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Count returns the number of stored authors.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Author{}).Count(&count).Error
	return count, database.TranslateError("count authors", err)
}
