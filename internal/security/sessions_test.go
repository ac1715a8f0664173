package security

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flashRouter(sm *SessionManager) *gin.Engine {
	router := gin.New()
	router.Use(sm.SessionLoadSave())
	router.POST("/set", func(c *gin.Context) {
		sm.Flash(c.Request, "Author created")
		c.Redirect(http.StatusSeeOther, "/show")
	})
	router.GET("/show", func(c *gin.Context) {
		c.String(http.StatusOK, sm.PopFlash(c.Request))
	})
	return router
}

func exerciseFlash(t *testing.T, sm *SessionManager) {
	t.Helper()
	router := flashRouter(sm)

	set := httptest.NewRecorder()
	router.ServeHTTP(set, httptest.NewRequest(http.MethodPost, "/set", nil))
	require.Equal(t, http.StatusSeeOther, set.Code)
	cookies := set.Result().Cookies()
	require.NotEmpty(t, cookies)

	show := func() string {
		req := httptest.NewRequest(http.MethodGet, "/show", nil)
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr.Body.String()
	}

	assert.Equal(t, "Author created", show())
	assert.Empty(t, show(), "flash is shown once")
}

func TestSessionManager_FlashInMemory(t *testing.T) {
	sm, err := NewSessionManager(nil, SessionConfig{Lifetime: time.Hour})
	require.NoError(t, err)

	exerciseFlash(t, sm)
}

func TestSessionManager_FlashSQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sm, err := NewSessionManager(db, SessionConfig{Lifetime: time.Hour})
	require.NoError(t, err)
	assert.Equal(t, "session", sm.Cookie.Name)

	exerciseFlash(t, sm)
}
