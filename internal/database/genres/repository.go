package genres

import (
	"context"

	"gorm.io/gorm"

	"github.com/prabinsunar/library-app/internal/database"
	"github.com/prabinsunar/library-app/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every genre ordered by name.
func (r *Repository) List(ctx context.Context) ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.WithContext(ctx).Order("name ASC").Find(&genres).Error
	return genres, database.TranslateError("list genres", err)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Genre, error) {
	var genre entities.Genre
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&genre).Error; err != nil {
		return nil, database.TranslateError("get genre", err)
	}
	return &genre, nil
}

// FindByName looks a genre up by its exact (stored, escaped) name.
func (r *Repository) FindByName(ctx context.Context, name string) (*entities.Genre, error) {
	var genre entities.Genre
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&genre).Error; err != nil {
		return nil, database.TranslateError("find genre by name", err)
	}
	return &genre, nil
}

func (r *Repository) Create(ctx context.Context, genre *entities.Genre) error {
	return database.TranslateError("create genre", r.db.WithContext(ctx).Create(genre).Error)
}

func (r *Repository) Update(ctx context.Context, genre *entities.Genre) error {
	result := r.db.WithContext(ctx).Model(&entities.Genre{}).
		Where("id = ?", genre.ID).
		Select("name").
		Updates(genre)
	if result.Error != nil {
		return database.TranslateError("update genre", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}

// DeleteIfUnreferenced removes the genre only while no book lists it.
func (r *Repository) DeleteIfUnreferenced(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("NOT EXISTS (SELECT 1 FROM "+entities.BookGenresTable+" bg WHERE bg.genre_id = ?)", id).
		Delete(&entities.Genre{})
	if result.Error != nil {
		return false, database.TranslateError("delete genre", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Genre{}).Count(&count).Error
	return count, database.TranslateError("count genres", err)
}
