package handlers

import (
	"net/http"
	"net/url"
	"time"

	services "crowd-server/service"

	"github.com/gorilla/mux"
)

type HotspotHandler struct {
	crowdService    *services.CrowdService
	defaultRadiusKm float64
}

func NewHotspotHandler(crowdService *services.CrowdService, defaultRadiusKm float64) *HotspotHandler {
	return &HotspotHandler{crowdService: crowdService, defaultRadiusKm: defaultRadiusKm}
}

// ListHotspots handles GET /v1/hotspots
func (h *HotspotHandler) ListHotspots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.crowdService.ListHotspots())
}

// GetHotspotCrowd handles GET /v1/hotspots/{name}/crowd?date=
func (h *HotspotHandler) GetHotspotCrowd(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)[NAME_PATH_ARG]
	date, err := parseDateArg(r.URL.Query(), DATE_QUERY_ARG, h.crowdService.Today())
	if err != nil {
		invalidArgument(w, DATE_QUERY_ARG)
		return
	}

	result, err := h.crowdService.GetHotspotCrowd(name, date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, result)
}

// GetHotspotsNearby handles GET /v1/hotspots/nearby?lat=&lon=&radius=&date=
func (h *HotspotHandler) GetHotspotsNearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, date, ok := h.parseNearbyArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	result, err := h.crowdService.GetNearbyHotspots(lat, lon, radius, date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, result)
}

func (h *HotspotHandler) parseNearbyArgs(vals url.Values, w http.ResponseWriter) (
	lat, lon, radius float64, date time.Time, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		invalidArgument(w, LAT_QUERY_ARG)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		invalidArgument(w, LON_QUERY_ARG)
		return
	}
	radius = h.defaultRadiusKm
	if vals.Get(RADIUS_QUERY_ARG) != "" {
		radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
		if err != nil {
			invalidArgument(w, RADIUS_QUERY_ARG)
			return
		}
	}
	date, err = parseDateArg(vals, DATE_QUERY_ARG, h.crowdService.Today())
	if err != nil {
		invalidArgument(w, DATE_QUERY_ARG)
		return
	}
	ok = true
	return
}
