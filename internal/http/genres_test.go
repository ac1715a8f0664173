package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenres_CreateAndDuplicate(t *testing.T) {
	app := setupApp(t)

	w := app.post(t, "/catalog/genre/create", url.Values{"name": {" Fantasy "}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	first := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(first, "/catalog/genre/"))

	w = app.post(t, "/catalog/genre/create", url.Values{"name": {"Fantasy"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, first, w.Header().Get("Location"))

	count, err := app.catalog.Genres.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGenres_CreateEmptyName(t *testing.T) {
	app := setupApp(t)

	w := app.post(t, "/catalog/genre/create", url.Values{"name": {"   "}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Genre name required")
}

func TestGenres_UpdateRejectsTakenName(t *testing.T) {
	app := setupApp(t)
	app.genre(t, "Fantasy")
	poetry := app.genre(t, "Poetry")

	w := app.post(t, poetry.URL()+"/update", url.Values{"name": {"Fantasy"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Genre name already in use")

	w = app.post(t, poetry.URL()+"/update", url.Values{"name": {""}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Genre name must not be empty")

	w = app.post(t, poetry.URL()+"/update", url.Values{"name": {"Verse"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	stored, err := app.catalog.Genres.GetByID(context.Background(), poetry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Verse", stored.Name)
}

func TestGenres_DeleteGuard(t *testing.T) {
	app := setupApp(t)
	fantasy := app.genre(t, "Fantasy")
	unused := app.genre(t, "Unused")
	app.book(t, "The Name of the Wind", app.author(t, "Patrick", "Rothfuss"), fantasy)

	page := app.get(t, fantasy.URL()+"/delete")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "The Name of the Wind")

	w := app.post(t, fantasy.URL()+"/delete", url.Values{"genreid": {fantasy.ID}})
	require.Equal(t, http.StatusOK, w.Code)
	_, err := app.catalog.Genres.GetByID(context.Background(), fantasy.ID)
	assert.NoError(t, err)

	w = app.post(t, unused.URL()+"/delete", url.Values{"genreid": {unused.ID}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/catalog/genres", w.Header().Get("Location"))
}

func TestGenres_DetailAndList(t *testing.T) {
	app := setupApp(t)
	fantasy := app.genre(t, "Fantasy")
	app.book(t, "The Name of the Wind", app.author(t, "Patrick", "Rothfuss"), fantasy)

	list := app.get(t, "/catalog/genres")
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), fantasy.URL())

	detail := app.get(t, fantasy.URL())
	require.Equal(t, http.StatusOK, detail.Code)
	assert.Contains(t, detail.Body.String(), "Genre: Fantasy")
	assert.Contains(t, detail.Body.String(), "The Name of the Wind")

	assert.Equal(t, http.StatusNotFound, app.get(t, "/catalog/genre/missing").Code)
}
