package catalog

import (
	"context"

	"github.com/prabinsunar/library-app/internal/entities"
)

// AuthorStore is implemented by authors.Repository.
type AuthorStore interface {
	List(ctx context.Context) ([]entities.Author, error)
	GetByID(ctx context.Context, id string) (*entities.Author, error)
	Create(ctx context.Context, author *entities.Author) error
	Update(ctx context.Context, author *entities.Author) error
	DeleteIfUnreferenced(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// GenreStore is implemented by genres.Repository.
type GenreStore interface {
	List(ctx context.Context) ([]entities.Genre, error)
	GetByID(ctx context.Context, id string) (*entities.Genre, error)
	FindByName(ctx context.Context, name string) (*entities.Genre, error)
	Create(ctx context.Context, genre *entities.Genre) error
	Update(ctx context.Context, genre *entities.Genre) error
	DeleteIfUnreferenced(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// BookStore is implemented by books.Repository.
type BookStore interface {
	ListPopulated(ctx context.Context) ([]entities.Book, error)
	GetByID(ctx context.Context, id string) (*entities.Book, error)
	GetPopulated(ctx context.Context, id string) (*entities.Book, error)
	ListByAuthor(ctx context.Context, authorID string) ([]entities.Book, error)
	ListByGenre(ctx context.Context, genreID string) ([]entities.Book, error)
	Create(ctx context.Context, book *entities.Book) error
	Update(ctx context.Context, book *entities.Book) error
	DeleteIfUnreferenced(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// BookInstanceStore is implemented by instances.Repository.
type BookInstanceStore interface {
	ListPopulated(ctx context.Context) ([]entities.BookInstance, error)
	GetByID(ctx context.Context, id string) (*entities.BookInstance, error)
	GetPopulated(ctx context.Context, id string) (*entities.BookInstance, error)
	ListByBook(ctx context.Context, bookID string) ([]entities.BookInstance, error)
	Create(ctx context.Context, instance *entities.BookInstance) error
	Update(ctx context.Context, instance *entities.BookInstance) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entities.BookStatus) (int64, error)
}
