package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/scripture/internal/database"
)

type HealthController struct {
	db      *database.Database
	version string
}

func NewHealthController(db *database.Database, version string) *HealthController {
	return &HealthController{db: db, version: version}
}

func (controller *HealthController) Status(c *gin.Context) {
	overall, dbStatus, status := "ok", "up", http.StatusOK
	if err := controller.db.Ping(); err != nil {
		overall, dbStatus, status = "degraded", "down", http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   overall,
		"version":  controller.version,
		"database": dbStatus,
	})
}
