package handlers

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"crowd-server/models/calendar"
	services "crowd-server/service"
	"crowd-server/util"

	"github.com/gorilla/mux"
)

// DistrictResolution is the body of GET /v1/districts/resolve.
type DistrictResolution struct {
	Destination string `json:"destination"`
	District    string `json:"district"`
}

type CalendarHandler struct {
	crowdService *services.CrowdService
}

func NewCalendarHandler(crowdService *services.CrowdService) *CalendarHandler {
	return &CalendarHandler{crowdService: crowdService}
}

// ResolveDistrict handles GET /v1/districts/resolve?destination=
func (h *CalendarHandler) ResolveDistrict(w http.ResponseWriter, r *http.Request) {
	destination := r.URL.Query().Get(DESTINATION_QUERY_ARG)
	writeJSON(w, DistrictResolution{
		Destination: destination,
		District:    h.crowdService.ResolveDistrict(destination),
	})
}

// GetDailyIntensity handles GET /v1/districts/{district}/intensity?date=
func (h *CalendarHandler) GetDailyIntensity(w http.ResponseWriter, r *http.Request) {
	district := mux.Vars(r)[DISTRICT_PATH_ARG]
	date, err := parseDateArg(r.URL.Query(), DATE_QUERY_ARG, h.crowdService.Today())
	if err != nil {
		invalidArgument(w, DATE_QUERY_ARG)
		return
	}
	writeJSON(w, h.crowdService.GetDailyIntensity(district, date))
}

// GetTripCalendar handles GET /v1/calendar?destination=&start=&end=
func (h *CalendarHandler) GetTripCalendar(w http.ResponseWriter, r *http.Request) {
	trip, ok := h.tripCalendar(w, r.URL.Query())
	if !ok {
		return
	}
	writeJSON(w, trip)
}

// GetTripCalendarChart handles GET /v1/calendar/chart?destination=&start=&end=
func (h *CalendarHandler) GetTripCalendarChart(w http.ResponseWriter, r *http.Request) {
	trip, ok := h.tripCalendar(w, r.URL.Query())
	if !ok {
		return
	}
	writeHTML(w, func(w io.Writer) error {
		return util.PlotTripCalendar(w, trip)
	})
}

func (h *CalendarHandler) tripCalendar(w http.ResponseWriter, vals url.Values) (*calendar.TripCalendar, bool) {
	destination, start, end, ok := h.parseTripArgs(vals, w)
	if !ok {
		return nil, false
	}
	trip, err := h.crowdService.GetTripCalendar(destination, start, end)
	if err != nil {
		writeServiceError(w, err)
		return nil, false
	}
	return trip, true
}

func (h *CalendarHandler) parseTripArgs(vals url.Values, w http.ResponseWriter) (
	destination string, start, end time.Time, ok bool,
) {
	var err error

	destination = strings.TrimSpace(vals.Get(DESTINATION_QUERY_ARG))
	if destination == "" {
		invalidArgument(w, DESTINATION_QUERY_ARG)
		return
	}
	if vals.Get(START_QUERY_ARG) == "" {
		invalidArgument(w, START_QUERY_ARG)
		return
	}
	start, err = parseDateArg(vals, START_QUERY_ARG, time.Time{})
	if err != nil {
		invalidArgument(w, START_QUERY_ARG)
		return
	}
	end = start
	if vals.Get(END_QUERY_ARG) != "" {
		end, err = parseDateArg(vals, END_QUERY_ARG, start)
		if err != nil {
			invalidArgument(w, END_QUERY_ARG)
			return
		}
	}
	ok = true
	return
}
