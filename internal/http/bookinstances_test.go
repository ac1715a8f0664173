package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabinsunar/library-app/internal/entities"
)

func TestBookInstances_CreateDefaults(t *testing.T) {
	app := setupApp(t)
	book := app.book(t, "Excession", app.author(t, "Iain", "Banks"))

	form := app.get(t, "/catalog/bookinstance/create")
	require.Equal(t, http.StatusOK, form.Code)
	assert.Contains(t, form.Body.String(), `<option value="Maintenance" selected>`)

	w := app.post(t, "/catalog/bookinstance/create", url.Values{
		"book":    {book.ID},
		"imprint": {"Orbit, 1996"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	id := strings.TrimPrefix(w.Header().Get("Location"), "/catalog/bookinstance/")

	stored, err := app.catalog.Instances.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entities.BookStatusMaintenance, stored.Status)
	assert.False(t, stored.DueBack.IsZero())
}

func TestBookInstances_CreateRejectsInvalidStatus(t *testing.T) {
	app := setupApp(t)

	w := app.post(t, "/catalog/bookinstance/create", url.Values{
		"status":   {"Lost"},
		"due_back": {"soon"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Title should not be empty")
	assert.Contains(t, body, "Imprint should not be empty")
	assert.Contains(t, body, "Invalid status")
	assert.Contains(t, body, "Invalid date")
}

func TestBookInstances_UpdateAndDetail(t *testing.T) {
	app := setupApp(t)
	book := app.book(t, "Excession", app.author(t, "Iain", "Banks"))
	instance := app.copy(t, book, entities.BookStatusAvailable)

	w := app.post(t, instance.URL()+"/update", url.Values{
		"book":     {book.ID},
		"imprint":  {"Orbit, 1997"},
		"status":   {"Loaned"},
		"due_back": {"2024-03-15"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	detail := app.get(t, instance.URL())
	require.Equal(t, http.StatusOK, detail.Code)
	body := detail.Body.String()
	assert.Contains(t, body, "Orbit, 1997")
	assert.Contains(t, body, "Loaned")
	assert.Contains(t, body, "Mar 15, 2024")

	form := app.get(t, instance.URL()+"/update")
	require.Equal(t, http.StatusOK, form.Code)
	assert.Contains(t, form.Body.String(), `value="2024-03-15"`)
	assert.Contains(t, form.Body.String(), `<option value="Loaned" selected>`)
}

func TestBookInstances_ListAndDelete(t *testing.T) {
	app := setupApp(t)
	book := app.book(t, "Excession", app.author(t, "Iain", "Banks"))
	instance := app.copy(t, book, entities.BookStatusAvailable)

	list := app.get(t, "/catalog/bookinstances")
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "Excession : Orbit, 1996")

	page := app.get(t, instance.URL()+"/delete")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), `name="bookinstanceid"`)

	w := app.post(t, instance.URL()+"/delete", url.Values{"bookinstanceid": {instance.ID}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/catalog/bookinstances", w.Header().Get("Location"))

	w = app.get(t, instance.URL()+"/delete")
	assert.Equal(t, http.StatusFound, w.Code)
}
