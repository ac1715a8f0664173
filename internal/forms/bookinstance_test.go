package forms

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabinsunar/library-app/internal/entities"
)

func TestBookInstanceForm_Valid(t *testing.T) {
	form := NewBookInstanceForm(url.Values{
		"book":     {"book-1"},
		"imprint":  {"Chilton, 1965"},
		"status":   {"Loaned"},
		"due_back": {"2024-03-15"},
	})
	require.Empty(t, form.Validate())

	bi := form.BookInstance()
	assert.Equal(t, entities.BookStatusLoaned, bi.Status)
	assert.Equal(t, "2024-03-15", bi.DueDateInput())
	assert.Equal(t, "Mar 15, 2024", bi.DueBackFormatted())
}

func TestBookInstanceForm_Defaults(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	form := NewBookInstanceForm(url.Values{"book": {"book-1"}, "imprint": {"Ace"}})
	require.Empty(t, form.Validate())

	bi := form.BookInstance()
	assert.Equal(t, entities.BookStatusMaintenance, bi.Status)
	assert.True(t, bi.DueBack.After(before))
	assert.Equal(t, "Maintenance", form.SelectedStatus())
}

func TestBookInstanceForm_Errors(t *testing.T) {
	form := NewBookInstanceForm(url.Values{
		"status":   {"Lost"},
		"due_back": {"15/03/2024"},
	})

	assert.Equal(t, Errors{
		{Field: "book", Message: "Title should not be empty"},
		{Field: "imprint", Message: "Imprint should not be empty"},
		{Field: "status", Message: "Invalid status"},
		{Field: "due_back", Message: "Invalid date"},
	}, form.Validate())
}

func TestBookInstanceFormFrom(t *testing.T) {
	form := BookInstanceFormFrom(&entities.BookInstance{
		BookID:  "book-1",
		Imprint: "Ace &amp; Co",
		Status:  entities.BookStatusReserved,
		DueBack: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, "Ace & Co", form.Imprint)
	assert.Equal(t, "Reserved", form.Status)
	assert.Equal(t, "2024-03-15", form.DueBack)
}
