package forms

import (
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/prabinsunar/library-app/internal/entities"
)

var bookFields = []string{"title", "author", "summary", "isbn"}

type BookForm struct {
	Title    string
	AuthorID string
	Summary  string
	ISBN     string
	GenreIDs []string
}

func NewBookForm(values url.Values) BookForm {
	return BookForm{
		Title:    strings.TrimSpace(values.Get("title")),
		AuthorID: strings.TrimSpace(values.Get("author")),
		Summary:  strings.TrimSpace(values.Get("summary")),
		ISBN:     strings.TrimSpace(values.Get("isbn")),
		GenreIDs: nonBlank(FieldFrom(values, "genre").Normalize()),
	}
}

func BookFormFrom(b *entities.Book) BookForm {
	return BookForm{
		Title:    unescape(b.Title),
		AuthorID: b.AuthorID,
		Summary:  unescape(b.Summary),
		ISBN:     unescape(b.ISBN),
		GenreIDs: b.GenreIDs(),
	}
}

func (f BookForm) Validate() Errors {
	return collect(bookFields, validation.Errors{
		"title":   validation.Validate(f.Title, validation.Required.Error("Title must not be empty")),
		"author":  validation.Validate(f.AuthorID, validation.Required.Error("Author must not be empty")),
		"summary": validation.Validate(f.Summary, validation.Required.Error("Summary must not be empty")),
		"isbn":    validation.Validate(f.ISBN, validation.Required.Error("ISBN must not be empty")),
	})
}

// HasGenre reports whether the form selected the genre; used to re-check boxes.
func (f BookForm) HasGenre(id string) bool {
	for _, g := range f.GenreIDs {
		if g == id {
			return true
		}
	}
	return false
}

func (f BookForm) Book() *entities.Book {
	genres := make([]entities.Genre, 0, len(f.GenreIDs))
	for _, id := range escapeAll(f.GenreIDs) {
		genres = append(genres, entities.Genre{ID: id})
	}
	return &entities.Book{
		Title:    escape(f.Title),
		AuthorID: escape(f.AuthorID),
		Summary:  escape(f.Summary),
		ISBN:     escape(f.ISBN),
		Genres:   genres,
	}
}
