package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/prabinsunar/library-app/internal/entities"
	"github.com/prabinsunar/library-app/internal/forms"
	"github.com/prabinsunar/library-app/internal/security"
)

var errPageNotFound = errors.New("page not found")

// page carries what every controller needs to render and redirect.
type page struct {
	sessions *security.SessionManager
}

// render adds the CSRF token and pending flash message to data and renders the template.
func (p page) render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["CSRFField"] = security.CSRFFieldName
	data["CSRFToken"] = security.CSRFToken(c)
	if p.sessions != nil {
		data["Flash"] = p.sessions.PopFlash(c.Request)
	}
	c.HTML(http.StatusOK, name, data)
}

// redirect sends the browser to location after a successful write, leaving a flash message.
func (p page) redirect(c *gin.Context, location, flash string) {
	if p.sessions != nil && flash != "" {
		p.sessions.Flash(c.Request, flash)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// fail renders entities.ErrNotFound as a 404 page and anything else as a 500.
func (p page) fail(c *gin.Context, err error, op string) {
	if errors.Is(err, entities.ErrNotFound) {
		renderError(c, http.StatusNotFound, err)
		return
	}
	log.Error().
		Str("request_id", c.GetString(requestIDKey)).
		Str("op", op).
		Err(err).
		Msg("Request failed")
	renderError(c, http.StatusInternalServerError, err)
}

// Server-side failures show this text; the cause is only logged.
const internalErrorMessage = "The server could not complete the request."

func renderError(c *gin.Context, status int, err error) {
	title := "Something went wrong"
	if status == http.StatusNotFound {
		title = "Not found"
	}
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = internalErrorMessage
	}
	c.HTML(status, "error", gin.H{
		"Title":   title,
		"Status":  status,
		"Message": message,
	})
}

// postForm parses the request body. On a malformed body it renders a 400 page and returns false.
func postForm(c *gin.Context) (url.Values, bool) {
	if err := c.Request.ParseForm(); err != nil {
		renderError(c, http.StatusBadRequest, err)
		return nil, false
	}
	return c.Request.PostForm, true
}

// formError turns a single failure into the form error list shown by templates.
func formError(field, message string) forms.Errors {
	return forms.Errors{{Field: field, Message: message}}
}

// targetID reads the id a delete form posts, falling back to the path parameter.
func targetID(values url.Values, field, fallback string) string {
	if id := values.Get(field); id != "" {
		return id
	}
	return fallback
}
