package security

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/rs/zerolog/log"
)

// CSRFFieldName is the form field gorilla/csrf reads the token from.
const CSRFFieldName = "gorilla.csrf.Token"

const csrfTokenKey = "csrf_token"

// CSRFMiddleware protects unsafe methods with a CSRF token. Over plain HTTP
// (secure=false) requests are marked as plaintext so the origin check does not
// demand TLS.
func CSRFMiddleware(secret []byte, secure bool) gin.HandlerFunc {
	csrfProtect := csrf.Protect(
		secret,
		csrf.Secure(secure),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteStrictMode),
		csrf.Path("/"),
		csrf.FieldName(CSRFFieldName),
		csrf.ErrorHandler(http.HandlerFunc(csrfErrorHandler)),
	)

	return func(c *gin.Context) {
		handler := csrfProtect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Set(csrfTokenKey, csrf.Token(r))
			c.Request = r
			c.Next()
		}))

		r := c.Request
		if !secure {
			r = csrf.PlaintextHTTPRequest(r)
		}
		handler.ServeHTTP(c.Writer, r)

		// The protect handler answered without calling through.
		if _, ok := c.Get(csrfTokenKey); !ok {
			c.Abort()
		}
	}
}

func csrfErrorHandler(w http.ResponseWriter, r *http.Request) {
	log.Warn().
		Str("path", r.URL.Path).
		Err(csrf.FailureReason(r)).
		Msg("CSRF check failed")

	if referer := r.Referer(); sameHost(referer, r.Host) {
		http.Redirect(w, r, r.Referer(), http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Form expired</title></head>
<body>
<h1>Form expired</h1>
<p>The form submission was invalid or has expired.</p>
<p><a href="/catalog">Back to the catalog</a></p>
</body>
</html>`))
}

func sameHost(referer, host string) bool {
	if referer == "" || host == "" {
		return false
	}
	for _, scheme := range []string{"http://", "https://"} {
		if strings.HasPrefix(referer, scheme+host+"/") {
			return true
		}
	}
	return false
}

// CSRFToken returns the token for the current request, or "" when CSRF is disabled.
func CSRFToken(c *gin.Context) string {
	if token, exists := c.Get(csrfTokenKey); exists {
		if t, ok := token.(string); ok {
			return t
		}
	}
	return ""
}
