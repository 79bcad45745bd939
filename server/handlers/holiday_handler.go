package handlers

import (
	"net/http"
	"strconv"

	services "crowd-server/service"

	"github.com/gorilla/mux"
)

type HolidayHandler struct {
	crowdService *services.CrowdService
}

func NewHolidayHandler(crowdService *services.CrowdService) *HolidayHandler {
	return &HolidayHandler{crowdService: crowdService}
}

// GetPublicHolidays handles GET /v1/holidays/{country}/{year}
func (h *HolidayHandler) GetPublicHolidays(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars[YEAR_PATH_ARG])
	if err != nil || year < 1 || year > 9999 {
		invalidArgument(w, YEAR_PATH_ARG)
		return
	}

	list, err := h.crowdService.GetPublicHolidays(r.Context(), vars[COUNTRY_PATH_ARG], year)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, list)
}
