package forms

import (
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/prabinsunar/library-app/internal/entities"
)

var bookInstanceFields = []string{"book", "imprint", "status", "due_back"}

type BookInstanceForm struct {
	BookID  string
	Imprint string
	Status  string
	DueBack string
}

func NewBookInstanceForm(values url.Values) BookInstanceForm {
	return BookInstanceForm{
		BookID:  strings.TrimSpace(values.Get("book")),
		Imprint: strings.TrimSpace(values.Get("imprint")),
		Status:  strings.TrimSpace(values.Get("status")),
		DueBack: strings.TrimSpace(values.Get("due_back")),
	}
}

func BookInstanceFormFrom(bi *entities.BookInstance) BookInstanceForm {
	return BookInstanceForm{
		BookID:  bi.BookID,
		Imprint: unescape(bi.Imprint),
		Status:  string(bi.Status),
		DueBack: bi.DueDateInput(),
	}
}

func (f BookInstanceForm) Validate() Errors {
	return collect(bookInstanceFields, validation.Errors{
		"book":    validation.Validate(f.BookID, validation.Required.Error("Title should not be empty")),
		"imprint": validation.Validate(f.Imprint, validation.Required.Error("Imprint should not be empty")),
		"status": validation.Validate(f.Status, validation.By(func(interface{}) error {
			if f.Status == "" || entities.BookStatus(f.Status).IsValid() {
				return nil
			}
			return validation.NewError("validation_status", "Invalid status")
		})),
		"due_back": validation.Validate(f.DueBack, isDate("Invalid date")),
	})
}

// SelectedStatus is the status to pre-select; an empty submission shows the default.
func (f BookInstanceForm) SelectedStatus() string {
	if f.Status == "" {
		return string(entities.BookStatusMaintenance)
	}
	return f.Status
}

// BookInstance builds the entity. An empty status becomes Maintenance and an
// empty due date becomes now.
func (f BookInstanceForm) BookInstance() *entities.BookInstance {
	bi := &entities.BookInstance{
		BookID:  escape(f.BookID),
		Imprint: escape(f.Imprint),
		Status:  entities.BookStatus(f.SelectedStatus()),
		DueBack: time.Now().UTC(),
	}
	if due := optionalDate(f.DueBack); due != nil {
		bi.DueBack = *due
	}
	return bi
}
