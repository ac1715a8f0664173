package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prabinsunar/library-app/internal/catalog"
	"github.com/prabinsunar/library-app/internal/entities"
	"github.com/prabinsunar/library-app/internal/forms"
)

type AuthorsController struct {
	page
	catalog *catalog.Catalog
}

func NewAuthorsController(c *catalog.Catalog, p page) *AuthorsController {
	return &AuthorsController{page: p, catalog: c}
}

// List handles GET /catalog/authors
func (ac *AuthorsController) List(c *gin.Context) {
	authors, err := ac.catalog.Authors.List(c.Request.Context())
	if err != nil {
		ac.fail(c, err, "list authors")
		return
	}
	ac.render(c, "author_list", gin.H{"Title": "Author List", "Authors": authors})
}

// Detail handles GET /catalog/author/:id
func (ac *AuthorsController) Detail(c *gin.Context) {
	detail, err := ac.catalog.AuthorDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		ac.fail(c, err, "author detail")
		return
	}
	ac.render(c, "author_detail", gin.H{
		"Title":  "Author Detail",
		"Author": detail.Author,
		"Books":  detail.Books,
	})
}

// CreateForm handles GET /catalog/author/create
func (ac *AuthorsController) CreateForm(c *gin.Context) {
	ac.renderForm(c, "Create Author", forms.AuthorForm{}, nil)
}

// Create handles POST /catalog/author/create
func (ac *AuthorsController) Create(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}
	form := forms.NewAuthorForm(values)
	if errs := form.Validate(); len(errs) > 0 {
		ac.renderForm(c, "Create Author", form, errs)
		return
	}

	author := form.Author()
	if err := ac.catalog.Authors.Create(c.Request.Context(), author); err != nil {
		ac.fail(c, err, "create author")
		return
	}
	ac.redirect(c, author.URL(), "Author created.")
}

// UpdateForm handles GET /catalog/author/:id/update
func (ac *AuthorsController) UpdateForm(c *gin.Context) {
	author, err := ac.catalog.Authors.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		ac.fail(c, err, "load author")
		return
	}
	ac.renderForm(c, "Update Author", forms.AuthorFormFrom(author), nil)
}

// Update handles POST /catalog/author/:id/update
func (ac *AuthorsController) Update(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}
	form := forms.NewAuthorForm(values)
	if errs := form.Validate(); len(errs) > 0 {
		ac.renderForm(c, "Update Author", form, errs)
		return
	}

	author := form.Author()
	author.ID = c.Param("id")
	if err := ac.catalog.Authors.Update(c.Request.Context(), author); err != nil {
		ac.fail(c, err, "update author")
		return
	}
	ac.redirect(c, author.URL(), "Author updated.")
}

// DeleteForm handles GET /catalog/author/:id/delete
func (ac *AuthorsController) DeleteForm(c *gin.Context) {
	inspection, err := ac.catalog.AuthorGuard().Inspect(c.Request.Context(), c.Param("id"))
	if err != nil {
		ac.fail(c, err, "inspect author")
		return
	}
	if inspection.State == catalog.DeleteAbsent {
		c.Redirect(http.StatusFound, "/catalog/authors")
		return
	}
	ac.renderDelete(c, inspection)
}

// Delete handles POST /catalog/author/:id/delete. The id is read from the authorid field.
func (ac *AuthorsController) Delete(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}
	id := targetID(values, "authorid", c.Param("id"))

	result, err := ac.catalog.AuthorGuard().Commit(c.Request.Context(), id)
	if err != nil {
		ac.fail(c, err, "delete author")
		return
	}
	switch result.State {
	case catalog.DeleteDone:
		ac.redirect(c, "/catalog/authors", "Author deleted.")
	case catalog.DeleteAbsent:
		c.Redirect(http.StatusFound, "/catalog/authors")
	default:
		ac.renderDelete(c, result)
	}
}

func (ac *AuthorsController) renderForm(c *gin.Context, title string, form forms.AuthorForm, errs forms.Errors) {
	ac.render(c, "author_form", gin.H{"Title": title, "Form": form, "Errors": errs})
}

func (ac *AuthorsController) renderDelete(c *gin.Context, inspection *catalog.Inspection[entities.Author, entities.Book]) {
	ac.render(c, "author_delete", gin.H{
		"Title":   "Delete Author",
		"Author":  inspection.Target,
		"Books":   inspection.Dependents,
		"Blocked": inspection.State == catalog.DeleteBlocked,
	})
}
