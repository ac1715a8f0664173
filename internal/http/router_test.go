package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabinsunar/library-app/internal/catalog"
	"github.com/prabinsunar/library-app/internal/database"
	"github.com/prabinsunar/library-app/internal/database/authors"
	"github.com/prabinsunar/library-app/internal/database/books"
	"github.com/prabinsunar/library-app/internal/database/genres"
	"github.com/prabinsunar/library-app/internal/database/instances"
	"github.com/prabinsunar/library-app/internal/database/integrity"
	"github.com/prabinsunar/library-app/internal/entities"
	"github.com/prabinsunar/library-app/internal/security"
	"github.com/prabinsunar/library-app/internal/tasks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	router  *gin.Engine
	catalog *catalog.Catalog
	db      *database.Database
}

func setupApp(t *testing.T) *testApp {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sessions, err := security.NewSessionManager(nil, security.SessionConfig{Lifetime: time.Hour})
	require.NoError(t, err)

	c := catalog.New(
		authors.NewRepository(db.DB),
		genres.NewRepository(db.DB),
		books.NewRepository(db.DB),
		instances.NewRepository(db.DB),
	)
	router := NewRouter(RouterConfig{
		Catalog:        c,
		Database:       db,
		SessionManager: sessions,
		Integrity:      tasks.NewInlineIntegrityRunner(integrity.NewRepository(db.DB)),
		Version:        "test",
	})
	return &testApp{router: router, catalog: c, db: db}
}

func (a *testApp) get(t *testing.T, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) post(t *testing.T, path string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) author(t *testing.T, first, family string) *entities.Author {
	t.Helper()
	author := &entities.Author{FirstName: first, FamilyName: family}
	require.NoError(t, a.catalog.Authors.Create(context.Background(), author))
	return author
}

func (a *testApp) genre(t *testing.T, name string) *entities.Genre {
	t.Helper()
	genre := &entities.Genre{Name: name}
	require.NoError(t, a.catalog.Genres.Create(context.Background(), genre))
	return genre
}

func (a *testApp) book(t *testing.T, title string, author *entities.Author, genres ...*entities.Genre) *entities.Book {
	t.Helper()
	book := &entities.Book{Title: title, AuthorID: author.ID, Summary: "A summary", ISBN: "9780000000000"}
	for _, g := range genres {
		book.Genres = append(book.Genres, entities.Genre{ID: g.ID})
	}
	require.NoError(t, a.catalog.Books.Create(context.Background(), book))
	return book
}

func (a *testApp) copy(t *testing.T, book *entities.Book, status entities.BookStatus) *entities.BookInstance {
	t.Helper()
	instance := &entities.BookInstance{BookID: book.ID, Imprint: "Orbit, 1996", Status: status}
	require.NoError(t, a.catalog.Instances.Create(context.Background(), instance))
	return instance
}

func TestRouter_RootRedirectsToCatalog(t *testing.T) {
	app := setupApp(t)

	w := app.get(t, "/")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog", w.Header().Get("Location"))
}

func TestRouter_UnknownPathRendersNotFoundPage(t *testing.T) {
	app := setupApp(t)

	w := app.get(t, "/nowhere")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "page not found")
}

func TestRouter_SetsRequestIDAndSecurityHeaders(t *testing.T) {
	app := setupApp(t)

	w := app.get(t, "/ping")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestIndex_ShowsCounts(t *testing.T) {
	app := setupApp(t)
	author := app.author(t, "Iain", "Banks")
	book := app.book(t, "Excession", author)
	app.copy(t, book, entities.BookStatusAvailable)
	app.copy(t, book, entities.BookStatusLoaned)

	w := app.get(t, "/catalog")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<strong>Books:</strong> 1")
	assert.Contains(t, body, "<strong>Copies:</strong> 2")
	assert.Contains(t, body, "<strong>Copies available:</strong> 1")
	assert.Contains(t, body, "<strong>Authors:</strong> 1")
	assert.Contains(t, body, "<strong>Genres:</strong> 0")
	assert.Contains(t, body, "/catalog/maintenance/integrity")
}

func TestMaintenance_CheckIntegrityRedirectsHome(t *testing.T) {
	app := setupApp(t)

	w := app.post(t, "/catalog/maintenance/integrity", url.Values{"repair": {"on"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/catalog", w.Header().Get("Location"))
}

func TestRouter_StorageFailureHidesCause(t *testing.T) {
	app := setupApp(t)
	require.NoError(t, app.db.Close())

	w := app.get(t, "/catalog/authors")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), internalErrorMessage)
	assert.NotContains(t, w.Body.String(), "closed")
	assert.NotContains(t, w.Body.String(), "list authors")
}

func TestIndex_CountFailureHidesCause(t *testing.T) {
	app := setupApp(t)
	require.NoError(t, app.db.Close())

	w := app.get(t, "/catalog")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), errCountsUnavailable)
	assert.NotContains(t, w.Body.String(), "closed")
}
