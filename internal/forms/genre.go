package forms

import (
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/prabinsunar/library-app/internal/entities"
)

const (
	genreNameRequired = "Genre name required"
	genreNameEmpty    = "Genre name must not be empty"
)

type GenreForm struct {
	Name string
	// update switches the required-name message to the one the update form shows.
	update bool
}

func NewGenreForm(values url.Values) GenreForm {
	return GenreForm{Name: strings.TrimSpace(values.Get("name"))}
}

// NewGenreUpdateForm is NewGenreForm for the update page.
func NewGenreUpdateForm(values url.Values) GenreForm {
	f := NewGenreForm(values)
	f.update = true
	return f
}

func GenreFormFrom(g *entities.Genre) GenreForm {
	return GenreForm{Name: unescape(g.Name), update: true}
}

func (f GenreForm) Validate() Errors {
	msg := genreNameRequired
	if f.update {
		msg = genreNameEmpty
	}
	return collect([]string{"name"}, validation.Errors{
		"name": validation.Validate(f.Name,
			validation.Required.Error(msg),
			validation.RuneLength(0, maxNameLength).Error("Genre name must not exceed 100 characters"),
		),
	})
}

func (f GenreForm) Genre() *entities.Genre {
	return &entities.Genre{Name: escape(f.Name)}
}

// StoredName is the name as it is persisted, for duplicate lookups.
func (f GenreForm) StoredName() string {
	return escape(f.Name)
}
