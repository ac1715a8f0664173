package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prabinsunar/library-app/internal/catalog"
	"github.com/prabinsunar/library-app/internal/entities"
	"github.com/prabinsunar/library-app/internal/forms"
)

type BookInstancesController struct {
	page
	catalog *catalog.Catalog
}

func NewBookInstancesController(c *catalog.Catalog, p page) *BookInstancesController {
	return &BookInstancesController{page: p, catalog: c}
}

// List handles GET /catalog/bookinstances
func (bic *BookInstancesController) List(c *gin.Context) {
	instances, err := bic.catalog.Instances.ListPopulated(c.Request.Context())
	if err != nil {
		bic.fail(c, err, "list book instances")
		return
	}
	bic.render(c, "bookinstance_list", gin.H{"Title": "Book Instance List", "Instances": instances})
}

// Detail handles GET /catalog/bookinstance/:id
func (bic *BookInstancesController) Detail(c *gin.Context) {
	instance, err := bic.catalog.Instances.GetPopulated(c.Request.Context(), c.Param("id"))
	if err != nil {
		bic.fail(c, err, "book instance detail")
		return
	}
	bic.render(c, "bookinstance_detail", gin.H{"Title": "Book Instance Detail", "Instance": instance})
}

// CreateForm handles GET /catalog/bookinstance/create
func (bic *BookInstancesController) CreateForm(c *gin.Context) {
	bic.renderForm(c, "Create BookInstance", forms.BookInstanceForm{}, nil)
}

// Create handles POST /catalog/bookinstance/create
func (bic *BookInstancesController) Create(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}
	form := forms.NewBookInstanceForm(values)
	if errs := form.Validate(); len(errs) > 0 {
		bic.renderForm(c, "Create BookInstance", form, errs)
		return
	}

	instance := form.BookInstance()
	if err := bic.catalog.Instances.Create(c.Request.Context(), instance); err != nil {
		bic.fail(c, err, "create book instance")
		return
	}
	bic.redirect(c, instance.URL(), "Book instance created.")
}

// UpdateForm handles GET /catalog/bookinstance/:id/update
func (bic *BookInstancesController) UpdateForm(c *gin.Context) {
	instance, err := bic.catalog.Instances.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		bic.fail(c, err, "load book instance")
		return
	}
	bic.renderForm(c, "Update BookInstance", forms.BookInstanceFormFrom(instance), nil)
}

// Update handles POST /catalog/bookinstance/:id/update
func (bic *BookInstancesController) Update(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}
	form := forms.NewBookInstanceForm(values)
	if errs := form.Validate(); len(errs) > 0 {
		bic.renderForm(c, "Update BookInstance", form, errs)
		return
	}

	instance := form.BookInstance()
	instance.ID = c.Param("id")
	if err := bic.catalog.Instances.Update(c.Request.Context(), instance); err != nil {
		bic.fail(c, err, "update book instance")
		return
	}
	bic.redirect(c, instance.URL(), "Book instance updated.")
}

// DeleteForm handles GET /catalog/bookinstance/:id/delete
func (bic *BookInstancesController) DeleteForm(c *gin.Context) {
	inspection, err := bic.catalog.BookInstanceGuard().Inspect(c.Request.Context(), c.Param("id"))
	if err != nil {
		bic.fail(c, err, "inspect book instance")
		return
	}
	if inspection.State == catalog.DeleteAbsent {
		c.Redirect(http.StatusFound, "/catalog/bookinstances")
		return
	}
	bic.render(c, "bookinstance_delete", gin.H{"Title": "Delete Book Instance", "Instance": inspection.Target})
}

// Delete handles POST /catalog/bookinstance/:id/delete. The id is read from the bookinstanceid field.
func (bic *BookInstancesController) Delete(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}
	id := targetID(values, "bookinstanceid", c.Param("id"))

	result, err := bic.catalog.BookInstanceGuard().Commit(c.Request.Context(), id)
	if err != nil {
		bic.fail(c, err, "delete book instance")
		return
	}
	if result.State == catalog.DeleteDone {
		bic.redirect(c, "/catalog/bookinstances", "Book instance deleted.")
		return
	}
	c.Redirect(http.StatusFound, "/catalog/bookinstances")
}

// renderForm loads the book choices and renders the instance form.
func (bic *BookInstancesController) renderForm(c *gin.Context, title string, form forms.BookInstanceForm, errs forms.Errors) {
	books, err := bic.catalog.Books.ListPopulated(c.Request.Context())
	if err != nil {
		bic.fail(c, err, "load book instance form")
		return
	}
	bic.render(c, "bookinstance_form", gin.H{
		"Title":    title,
		"Form":     form,
		"Books":    books,
		"Statuses": entities.BookStatuses,
		"Errors":   errs,
	})
}
