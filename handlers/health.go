package handlers

import (
	"net/http"

	"ziaclinic/utils"

	"github.com/gin-gonic/gin"
)

const storeDownHint = "Set MONGO_URI (or DATABASE_URL) to a reachable MongoDB deployment, then restart the server."

// HealthHandler reports liveness of the API and its record store.
type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

// RootHandler handles GET /.
func (h *HealthHandler) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "ZIA Clinic API"})
}

// HealthCheckHandler handles GET /health with a live probe.
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	status := h.Monitor.Check(c.Request.Context())

	body := gin.H{"status": "ok", "db": "connected"}
	if status.Cache != nil {
		body["cache"] = connectionState(*status.Cache)
	}
	if !status.Store {
		body["status"] = "degraded"
		body["db"] = "disconnected"
		body["hint"] = storeDownHint
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	c.JSON(http.StatusOK, body)
}

// FaviconHandler answers browser favicon probes with 204 so they stop retrying.
func (h *HealthHandler) FaviconHandler(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func connectionState(up bool) string {
	if up {
		return "connected"
	}
	return "disconnected"
}
