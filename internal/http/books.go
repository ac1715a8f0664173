package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prabinsunar/library-app/internal/catalog"
	"github.com/prabinsunar/library-app/internal/entities"
	"github.com/prabinsunar/library-app/internal/forms"
)

type BooksController struct {
	page
	catalog *catalog.Catalog
}

func NewBooksController(c *catalog.Catalog, p page) *BooksController {
	return &BooksController{page: p, catalog: c}
}

// List handles GET /catalog/books
func (bc *BooksController) List(c *gin.Context) {
	books, err := bc.catalog.Books.ListPopulated(c.Request.Context())
	if err != nil {
		bc.fail(c, err, "list books")
		return
	}
	bc.render(c, "book_list", gin.H{"Title": "Book List", "Books": books})
}

// Detail handles GET /catalog/book/:id
func (bc *BooksController) Detail(c *gin.Context) {
	detail, err := bc.catalog.BookDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		bc.fail(c, err, "book detail")
		return
	}
	bc.render(c, "book_detail", gin.H{
		"Title":     detail.Book.Title,
		"Book":      detail.Book,
		"Instances": detail.Instances,
	})
}

// CreateForm handles GET /catalog/book/create
func (bc *BooksController) CreateForm(c *gin.Context) {
	options, err := bc.catalog.BookFormOptions(c.Request.Context())
	if err != nil {
		bc.fail(c, err, "load book form")
		return
	}
	bc.renderForm(c, "Create Book", forms.BookForm{}, options, nil)
}

// Create handles POST /catalog/book/create
func (bc *BooksController) Create(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}
	form := forms.NewBookForm(values)
	if errs := form.Validate(); len(errs) > 0 {
		bc.rerender(c, "Create Book", form, errs)
		return
	}

	book := form.Book()
	if err := bc.catalog.Books.Create(c.Request.Context(), book); err != nil {
		bc.fail(c, err, "create book")
		return
	}
	bc.redirect(c, book.URL(), "Book created.")
}

// UpdateForm handles GET /catalog/book/:id/update
func (bc *BooksController) UpdateForm(c *gin.Context) {
	book, options, err := bc.catalog.BookForUpdate(c.Request.Context(), c.Param("id"))
	if err != nil {
		bc.fail(c, err, "load book")
		return
	}
	bc.renderForm(c, "Update Book", forms.BookFormFrom(book), options, nil)
}

// Update handles POST /catalog/book/:id/update
func (bc *BooksController) Update(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}
	form := forms.NewBookForm(values)
	if errs := form.Validate(); len(errs) > 0 {
		bc.rerender(c, "Update Book", form, errs)
		return
	}

	book := form.Book()
	book.ID = c.Param("id")
	if err := bc.catalog.Books.Update(c.Request.Context(), book); err != nil {
		bc.fail(c, err, "update book")
		return
	}
	bc.redirect(c, book.URL(), "Book updated.")
}

// DeleteForm handles GET /catalog/book/:id/delete
func (bc *BooksController) DeleteForm(c *gin.Context) {
	inspection, err := bc.catalog.BookGuard().Inspect(c.Request.Context(), c.Param("id"))
	if err != nil {
		bc.fail(c, err, "inspect book")
		return
	}
	if inspection.State == catalog.DeleteAbsent {
		c.Redirect(http.StatusFound, "/catalog/books")
		return
	}
	bc.renderDelete(c, inspection)
}

// Delete handles POST /catalog/book/:id/delete. The id is read from the bookid field.
func (bc *BooksController) Delete(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}
	id := targetID(values, "bookid", c.Param("id"))

	result, err := bc.catalog.BookGuard().Commit(c.Request.Context(), id)
	if err != nil {
		bc.fail(c, err, "delete book")
		return
	}
	switch result.State {
	case catalog.DeleteDone:
		bc.redirect(c, "/catalog/books", "Book deleted.")
	case catalog.DeleteAbsent:
		c.Redirect(http.StatusFound, "/catalog/books")
	default:
		bc.renderDelete(c, result)
	}
}

// rerender shows a rejected form again, reloading the author and genre choices.
func (bc *BooksController) rerender(c *gin.Context, title string, form forms.BookForm, errs forms.Errors) {
	options, err := bc.catalog.BookFormOptions(c.Request.Context())
	if err != nil {
		bc.fail(c, err, "load book form")
		return
	}
	bc.renderForm(c, title, form, options, errs)
}

func (bc *BooksController) renderForm(c *gin.Context, title string, form forms.BookForm, options *catalog.BookFormOptions, errs forms.Errors) {
	bc.render(c, "book_form", gin.H{
		"Title":   title,
		"Form":    form,
		"Authors": options.Authors,
		"Genres":  options.Genres,
		"Errors":  errs,
	})
}

func (bc *BooksController) renderDelete(c *gin.Context, inspection *catalog.Inspection[entities.Book, entities.BookInstance]) {
	bc.render(c, "book_delete", gin.H{
		"Title":     "Delete Book",
		"Book":      inspection.Target,
		"Instances": inspection.Dependents,
		"Blocked":   inspection.State == catalog.DeleteBlocked,
	})
}
