package handlers

import (
	"net/http"

	"collections-backend/internal/monitoring"
	"collections-backend/pkg/utils"
)

type MonitoringHandler struct{}

func NewMonitoringHandler() *MonitoringHandler {
	return &MonitoringHandler{}
}

// SystemStats reports host CPU/memory/disk usage for the ops view.
func (h *MonitoringHandler) SystemStats(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, monitoring.Collect())
}
