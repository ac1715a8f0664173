package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/prabinsunar/library-app/internal/catalog"
)

type IndexController struct {
	page
	catalog *catalog.Catalog
	// maintenance shows the integrity check form.
	maintenance bool
}

func NewIndexController(c *catalog.Catalog, p page, maintenance bool) *IndexController {
	return &IndexController{page: p, catalog: c, maintenance: maintenance}
}

const errCountsUnavailable = "record counts are unavailable"

// Home renders the record counts. A failed count is shown on the page
// instead of an error page.
func (ic *IndexController) Home(c *gin.Context) {
	data := gin.H{"Title": "Local Library Home", "Maintenance": ic.maintenance}

	summary, err := ic.catalog.Summary(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to count catalog records")
		data["Error"] = errCountsUnavailable
	} else {
		data["Summary"] = summary
	}

	ic.render(c, "index", data)
}
