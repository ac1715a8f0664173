package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is implemented by database.Database.
type Pinger interface {
	Ping() error
}

// HealthResponse is the /health body. Checks maps each dependency to "ok",
// "not configured" or "error: <reason>".
type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	db      Pinger
	version string
}

func NewHealthController(db Pinger, version string) *HealthController {
	return &HealthController{db: db, version: version}
}

func pingCheck(p Pinger) (string, bool) {
	if p == nil {
		return "not configured", true
	}
	if err := p.Ping(); err != nil {
		return "error: " + err.Error(), false
	}
	return "ok", true
}

// Status answers 503 as soon as one check fails.
func (h *HealthController) Status(c *gin.Context) {
	resp := HealthResponse{
		Status:  "healthy",
		Time:    time.Now().UTC().Format(time.RFC3339),
		Version: h.version,
		Checks:  map[string]string{},
	}
	code := http.StatusOK

	result, ok := pingCheck(h.db)
	resp.Checks["database"] = result
	if !ok {
		resp.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.IndentedJSON(code, resp)
}

func (h *HealthController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
