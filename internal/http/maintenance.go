package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/prabinsunar/library-app/internal/tasks"
)

type MaintenanceController struct {
	page
	integrity IntegrityQueue
}

func NewMaintenanceController(integrity IntegrityQueue, p page) *MaintenanceController {
	return &MaintenanceController{page: p, integrity: integrity}
}

// CheckIntegrity handles POST /catalog/maintenance/integrity. A checked
// "repair" box also removes genre references that point nowhere.
func (mc *MaintenanceController) CheckIntegrity(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}
	task := tasks.CheckIntegrityTask{Repair: values.Get("repair") != "", Source: "http"}

	id, err := mc.integrity.EnqueueIntegrityCheck(c.Request.Context(), task)
	if err != nil {
		mc.fail(c, err, "enqueue integrity check")
		return
	}
	log.Info().Str("task_id", id).Bool("repair", task.Repair).Msg("Integrity check requested")
	mc.redirect(c, "/catalog", "Integrity check started.")
}
