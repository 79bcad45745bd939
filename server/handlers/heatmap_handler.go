package handlers

import (
	"io"
	"net/http"

	"crowd-server/models"
	services "crowd-server/service"
	"crowd-server/util"
)

type HeatmapHandler struct {
	crowdService *services.CrowdService
}

func NewHeatmapHandler(crowdService *services.CrowdService) *HeatmapHandler {
	return &HeatmapHandler{crowdService: crowdService}
}

// GetHeatmap handles GET /v1/heatmap?date=
func (h *HeatmapHandler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, snapshot)
}

// GetHeatmapChart handles GET /v1/heatmap/chart?date=
func (h *HeatmapHandler) GetHeatmapChart(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	writeHTML(w, func(w io.Writer) error {
		return util.PlotHeatmap(w, snapshot)
	})
}

func (h *HeatmapHandler) snapshot(w http.ResponseWriter, r *http.Request) (*models.HeatmapSnapshot, bool) {
	date, err := parseDateArg(r.URL.Query(), DATE_QUERY_ARG, h.crowdService.Today())
	if err != nil {
		invalidArgument(w, DATE_QUERY_ARG)
		return nil, false
	}
	snapshot, err := h.crowdService.GetHeatmap(date)
	if err != nil {
		writeServiceError(w, err)
		return nil, false
	}
	return snapshot, true
}
