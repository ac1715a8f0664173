package forms

import (
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/prabinsunar/library-app/internal/entities"
)

const maxNameLength = 100

var authorFields = []string{"first_name", "family_name", "date_of_birth", "date_of_death"}

type AuthorForm struct {
	FirstName   string
	FamilyName  string
	DateOfBirth string
	DateOfDeath string
}

func NewAuthorForm(values url.Values) AuthorForm {
	return AuthorForm{
		FirstName:   strings.TrimSpace(values.Get("first_name")),
		FamilyName:  strings.TrimSpace(values.Get("family_name")),
		DateOfBirth: strings.TrimSpace(values.Get("date_of_birth")),
		DateOfDeath: strings.TrimSpace(values.Get("date_of_death")),
	}
}

// AuthorFormFrom pre-fills a form from a stored author.
func AuthorFormFrom(a *entities.Author) AuthorForm {
	return AuthorForm{
		FirstName:   unescape(a.FirstName),
		FamilyName:  unescape(a.FamilyName),
		DateOfBirth: a.DateOfBirthInput(),
		DateOfDeath: a.DateOfDeathInput(),
	}
}

func (f AuthorForm) Validate() Errors {
	return collect(authorFields, validation.Errors{
		"first_name": validation.Validate(f.FirstName,
			validation.Required.Error("First name must be specified."),
			validation.RuneLength(0, maxNameLength).Error("First name must not exceed 100 characters."),
			is.Alphanumeric.Error("First name has non-alphanumeric characters."),
		),
		"family_name": validation.Validate(f.FamilyName,
			validation.Required.Error("Family name must be specified."),
			validation.RuneLength(0, maxNameLength).Error("Family name must not exceed 100 characters."),
			is.Alphanumeric.Error("Family name has non-alphanumeric characters."),
		),
		"date_of_birth": validation.Validate(f.DateOfBirth, isDate("Invalid date of birth")),
		"date_of_death": validation.Validate(f.DateOfDeath, isDate("Invalid date of death")),
	})
}

// Author builds the entity to store. Call it only after Validate returned no errors.
func (f AuthorForm) Author() *entities.Author {
	return &entities.Author{
		FirstName:   escape(f.FirstName),
		FamilyName:  escape(f.FamilyName),
		DateOfBirth: optionalDate(f.DateOfBirth),
		DateOfDeath: optionalDate(f.DateOfDeath),
	}
}
