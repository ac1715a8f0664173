// Package instances provides database operations for physical book instances.
package instances

import (
	"context"

	"gorm.io/gorm"

	"github.com/prabinsunar/library-app/internal/database"
	"github.com/prabinsunar/library-app/internal/entities"
)

// Repository handles all book instance database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new instances repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListPopulated returns every instance with its book resolved, ordered by due date.
func (r *Repository) ListPopulated(ctx context.Context) ([]entities.BookInstance, error) {
	var instances []entities.BookInstance
	err := r.db.WithContext(ctx).
		Preload("Book").
		Order("due_back ASC, imprint ASC").
		Find(&instances).Error
	return instances, database.TranslateError("list book instances", err)
}

// GetByID returns the bare instance with only BookID set.
func (r *Repository) GetByID(ctx context.Context, id string) (*entities.BookInstance, error) {
	var instance entities.BookInstance
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&instance).Error; err != nil {
		return nil, database.TranslateError("get book instance", err)
	}
	return &instance, nil
}

// GetPopulated returns the instance with its book resolved.
func (r *Repository) GetPopulated(ctx context.Context, id string) (*entities.BookInstance, error) {
	var instance entities.BookInstance
	err := r.db.WithContext(ctx).Preload("Book").Where("id = ?", id).First(&instance).Error
	if err != nil {
		return nil, database.TranslateError("get book instance", err)
	}
	return &instance, nil
}

// ListByBook returns the instances of a book ordered by imprint.
func (r *Repository) ListByBook(ctx context.Context, bookID string) ([]entities.BookInstance, error) {
	var instances []entities.BookInstance
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("imprint ASC, id ASC").
		Find(&instances).Error
	return instances, database.TranslateError("list book instances by book", err)
}

func (r *Repository) Create(ctx context.Context, instance *entities.BookInstance) error {
	return database.TranslateError("create book instance", r.db.WithContext(ctx).Omit("Book").Create(instance).Error)
}

// Update replaces every stored field of the instance.
func (r *Repository) Update(ctx context.Context, instance *entities.BookInstance) error {
	result := r.db.WithContext(ctx).Model(&entities.BookInstance{}).
		Where("id = ?", instance.ID).
		Updates(map[string]any{
			"book_id":  instance.BookID,
			"imprint":  instance.Imprint,
			"status":   instance.Status,
			"due_back": instance.DueBack,
		})
	if result.Error != nil {
		return database.TranslateError("update book instance", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}

// Delete removes the instance. Nothing references instances, so deletion is
// unconditional; it reports false when the instance did not exist.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.BookInstance{})
	if result.Error != nil {
		return false, database.TranslateError("delete book instance", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.BookInstance{}).Count(&count).Error
	return count, database.TranslateError("count book instances", err)
}

// CountByStatus returns the number of instances with the given status.
func (r *Repository) CountByStatus(ctx context.Context, status entities.BookStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.BookInstance{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, database.TranslateError("count book instances by status", err)
}
