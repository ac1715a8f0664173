// Package catalog combines the per-entity stores into the reads and guarded
// deletes the pages need. Independent reads within one call run concurrently.
package catalog

import (
	"context"
	"errors"

	"github.com/prabinsunar/library-app/internal/entities"
	"github.com/prabinsunar/library-app/internal/parallel"
)

// ErrGenreNameTaken is returned when a genre is renamed to a name another genre already uses.
var ErrGenreNameTaken = errors.New("genre name already in use")

type Catalog struct {
	Authors   AuthorStore
	Genres    GenreStore
	Books     BookStore
	Instances BookInstanceStore
}

func New(authors AuthorStore, genres GenreStore, books BookStore, instances BookInstanceStore) *Catalog {
	return &Catalog{Authors: authors, Genres: genres, Books: books, Instances: instances}
}

// Summary holds the record counts shown on the home page.
type Summary struct {
	Books              int64
	BookInstances      int64
	AvailableInstances int64
	Authors            int64
	Genres             int64
}

func (c *Catalog) Summary(ctx context.Context) (*Summary, error) {
	var s Summary
	err := parallel.Run(
		func() (err error) { s.Books, err = c.Books.Count(ctx); return },
		func() (err error) { s.BookInstances, err = c.Instances.Count(ctx); return },
		func() (err error) {
			s.AvailableInstances, err = c.Instances.CountByStatus(ctx, entities.BookStatusAvailable)
			return
		},
		func() (err error) { s.Authors, err = c.Authors.Count(ctx); return },
		func() (err error) { s.Genres, err = c.Genres.Count(ctx); return },
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

type AuthorDetail struct {
	Author *entities.Author
	Books  []entities.Book
}

func (c *Catalog) AuthorDetail(ctx context.Context, id string) (*AuthorDetail, error) {
	var d AuthorDetail
	err := parallel.Run(
		func() (err error) { d.Author, err = c.Authors.GetByID(ctx, id); return },
		func() (err error) { d.Books, err = c.Books.ListByAuthor(ctx, id); return },
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type GenreDetail struct {
	Genre *entities.Genre
	Books []entities.Book
}

func (c *Catalog) GenreDetail(ctx context.Context, id string) (*GenreDetail, error) {
	var d GenreDetail
	err := parallel.Run(
		func() (err error) { d.Genre, err = c.Genres.GetByID(ctx, id); return },
		func() (err error) { d.Books, err = c.Books.ListByGenre(ctx, id); return },
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type BookDetail struct {
	Book      *entities.Book
	Instances []entities.BookInstance
}

func (c *Catalog) BookDetail(ctx context.Context, id string) (*BookDetail, error) {
	var d BookDetail
	err := parallel.Run(
		func() (err error) { d.Book, err = c.Books.GetPopulated(ctx, id); return },
		func() (err error) { d.Instances, err = c.Instances.ListByBook(ctx, id); return },
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// BookFormOptions are the choices offered by the book form.
type BookFormOptions struct {
	Authors []entities.Author
	Genres  []entities.Genre
}

func (c *Catalog) BookFormOptions(ctx context.Context) (*BookFormOptions, error) {
	var o BookFormOptions
	err := parallel.Run(
		func() (err error) { o.Authors, err = c.Authors.List(ctx); return },
		func() (err error) { o.Genres, err = c.Genres.List(ctx); return },
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// BookForUpdate loads the bare book together with the form choices.
func (c *Catalog) BookForUpdate(ctx context.Context, id string) (*entities.Book, *BookFormOptions, error) {
	var (
		book    *entities.Book
		options *BookFormOptions
	)
	err := parallel.Run(
		func() (err error) { book, err = c.Books.GetByID(ctx, id); return },
		func() (err error) { options, err = c.BookFormOptions(ctx); return },
	)
	if err != nil {
		return nil, nil, err
	}
	return book, options, nil
}

// CreateGenre stores genre unless a genre with the same name exists, in which
// case the existing genre is returned and created is false.
func (c *Catalog) CreateGenre(ctx context.Context, genre *entities.Genre) (stored *entities.Genre, created bool, err error) {
	existing, err := c.Genres.FindByName(ctx, genre.Name)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, entities.ErrNotFound):
		return nil, false, err
	}
	if err := c.Genres.Create(ctx, genre); err != nil {
		return nil, false, err
	}
	return genre, true, nil
}

// UpdateGenre renames a genre. It returns ErrGenreNameTaken when another genre has the name.
func (c *Catalog) UpdateGenre(ctx context.Context, genre *entities.Genre) error {
	existing, err := c.Genres.FindByName(ctx, genre.Name)
	switch {
	case err == nil && existing.ID != genre.ID:
		return ErrGenreNameTaken
	case err != nil && !errors.Is(err, entities.ErrNotFound):
		return err
	}
	return c.Genres.Update(ctx, genre)
}

// AuthorGuard blocks deleting an author while books reference it.
func (c *Catalog) AuthorGuard() Guard[entities.Author, entities.Book] {
	return Guard[entities.Author, entities.Book]{
		Load:       c.Authors.GetByID,
		Dependents: c.Books.ListByAuthor,
		Delete:     c.Authors.DeleteIfUnreferenced,
	}
}

// GenreGuard blocks deleting a genre while books reference it.
func (c *Catalog) GenreGuard() Guard[entities.Genre, entities.Book] {
	return Guard[entities.Genre, entities.Book]{
		Load:       c.Genres.GetByID,
		Dependents: c.Books.ListByGenre,
		Delete:     c.Genres.DeleteIfUnreferenced,
	}
}

// BookGuard blocks deleting a book while copies reference it.
func (c *Catalog) BookGuard() Guard[entities.Book, entities.BookInstance] {
	return Guard[entities.Book, entities.BookInstance]{
		Load:       c.Books.GetPopulated,
		Dependents: c.Instances.ListByBook,
		Delete:     c.Books.DeleteIfUnreferenced,
	}
}

// BookInstanceGuard has no dependents: copies are leaves.
func (c *Catalog) BookInstanceGuard() Guard[entities.BookInstance, struct{}] {
	return Guard[entities.BookInstance, struct{}]{
		Load:       c.Instances.GetPopulated,
		Dependents: func(context.Context, string) ([]struct{}, error) { return nil, nil },
		Delete:     c.Instances.Delete,
	}
}
