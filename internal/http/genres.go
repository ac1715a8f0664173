package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prabinsunar/library-app/internal/catalog"
	"github.com/prabinsunar/library-app/internal/entities"
	"github.com/prabinsunar/library-app/internal/forms"
)

type GenresController struct {
	page
	catalog *catalog.Catalog
}

func NewGenresController(c *catalog.Catalog, p page) *GenresController {
	return &GenresController{page: p, catalog: c}
}

// List handles GET /catalog/genres
func (gc *GenresController) List(c *gin.Context) {
	genres, err := gc.catalog.Genres.List(c.Request.Context())
	if err != nil {
		gc.fail(c, err, "list genres")
		return
	}
	gc.render(c, "genre_list", gin.H{"Title": "Genre List", "Genres": genres})
}

// Detail handles GET /catalog/genre/:id
func (gc *GenresController) Detail(c *gin.Context) {
	detail, err := gc.catalog.GenreDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		gc.fail(c, err, "genre detail")
		return
	}
	gc.render(c, "genre_detail", gin.H{
		"Title": "Genre Detail",
		"Genre": detail.Genre,
		"Books": detail.Books,
	})
}

// CreateForm handles GET /catalog/genre/create
func (gc *GenresController) CreateForm(c *gin.Context) {
	gc.renderForm(c, "Create Genre", forms.GenreForm{}, nil)
}

// Create handles POST /catalog/genre/create. Submitting an existing name
// redirects to that genre instead of creating a duplicate.
func (gc *GenresController) Create(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}
	form := forms.NewGenreForm(values)
	if errs := form.Validate(); len(errs) > 0 {
		gc.renderForm(c, "Create Genre", form, errs)
		return
	}

	genre, created, err := gc.catalog.CreateGenre(c.Request.Context(), form.Genre())
	if err != nil {
		gc.fail(c, err, "create genre")
		return
	}
	flash := "Genre created."
	if !created {
		flash = "Genre already exists."
	}
	gc.redirect(c, genre.URL(), flash)
}

// UpdateForm handles GET /catalog/genre/:id/update
func (gc *GenresController) UpdateForm(c *gin.Context) {
	genre, err := gc.catalog.Genres.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		gc.fail(c, err, "load genre")
		return
	}
	gc.renderForm(c, "Update Genre", forms.GenreFormFrom(genre), nil)
}

// Update handles POST /catalog/genre/:id/update
func (gc *GenresController) Update(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}
	form := forms.NewGenreUpdateForm(values)
	if errs := form.Validate(); len(errs) > 0 {
		gc.renderForm(c, "Update Genre", form, errs)
		return
	}

	genre := form.Genre()
	genre.ID = c.Param("id")
	err := gc.catalog.UpdateGenre(c.Request.Context(), genre)
	switch {
	case errors.Is(err, catalog.ErrGenreNameTaken):
		gc.renderForm(c, "Update Genre", form, formError("name", "Genre name already in use"))
		return
	case err != nil:
		gc.fail(c, err, "update genre")
		return
	}
	gc.redirect(c, genre.URL(), "Genre updated.")
}

// DeleteForm handles GET /catalog/genre/:id/delete
func (gc *GenresController) DeleteForm(c *gin.Context) {
	inspection, err := gc.catalog.GenreGuard().Inspect(c.Request.Context(), c.Param("id"))
	if err != nil {
		gc.fail(c, err, "inspect genre")
		return
	}
	if inspection.State == catalog.DeleteAbsent {
		c.Redirect(http.StatusFound, "/catalog/genres")
		return
	}
	gc.renderDelete(c, inspection)
}

// Delete handles POST /catalog/genre/:id/delete. The id is read from the genreid field.
func (gc *GenresController) Delete(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}
	id := targetID(values, "genreid", c.Param("id"))

	result, err := gc.catalog.GenreGuard().Commit(c.Request.Context(), id)
	if err != nil {
		gc.fail(c, err, "delete genre")
		return
	}
	switch result.State {
	case catalog.DeleteDone:
		gc.redirect(c, "/catalog/genres", "Genre deleted.")
	case catalog.DeleteAbsent:
		c.Redirect(http.StatusFound, "/catalog/genres")
	default:
		gc.renderDelete(c, result)
	}
}

func (gc *GenresController) renderForm(c *gin.Context, title string, form forms.GenreForm, errs forms.Errors) {
	gc.render(c, "genre_form", gin.H{"Title": title, "Form": form, "Errors": errs})
}

func (gc *GenresController) renderDelete(c *gin.Context, inspection *catalog.Inspection[entities.Genre, entities.Book]) {
	gc.render(c, "genre_delete", gin.H{
		"Title":   "Delete Genre",
		"Genre":   inspection.Target,
		"Books":   inspection.Dependents,
		"Blocked": inspection.State == catalog.DeleteBlocked,
	})
}
