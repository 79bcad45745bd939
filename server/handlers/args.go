package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"crowd-server/crowd"
	services "crowd-server/service"

	log "github.com/sirupsen/logrus"
)

const (
	LAT_QUERY_ARG         = "lat"
	LON_QUERY_ARG         = "lon"
	RADIUS_QUERY_ARG      = "radius"
	DATE_QUERY_ARG        = "date"
	DESTINATION_QUERY_ARG = "destination"
	START_QUERY_ARG       = "start"
	END_QUERY_ARG         = "end"
	COUNTRY_QUERY_ARG     = "country"
	HOUR_QUERY_ARG        = "hour"
	TEMP_QUERY_ARG        = "temp"
	PRECIP_QUERY_ARG      = "precip"
	WEATHER_QUERY_ARG     = "weather"
)

const (
	NAME_PATH_ARG     = "name"
	DISTRICT_PATH_ARG = "district"
	COUNTRY_PATH_ARG  = "country"
	YEAR_PATH_ARG     = "year"
)

// parseArgFloat64 rejects NaN and infinities, which ParseFloat accepts.
func parseArgFloat64(vals url.Values, name string) (float64, error) {
	v, err := strconv.ParseFloat(vals.Get(name), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s must be a finite number", name)
	}
	return v, nil
}

// parseDateArg reads a YYYY-MM-DD argument, defaulting to today when absent.
func parseDateArg(vals url.Values, name string, today time.Time) (time.Time, error) {
	s := vals.Get(name)
	if s == "" {
		return today, nil
	}
	return crowd.ParseDate(s)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("Error encoding response: %v", err)
	}
}

// writeHTML renders into a buffer first so a failed render still yields a clean 500.
func writeHTML(w http.ResponseWriter, render func(w io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		log.Errorf("Error rendering chart: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// writeServiceError maps service and domain errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrHotspotNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrInvalidArgument),
		errors.Is(err, crowd.ErrInvalidRange),
		errors.Is(err, crowd.ErrRangeTooLong):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("Unhandled service error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func invalidArgument(w http.ResponseWriter, name string) {
	http.Error(w, "Invalid argument "+name, http.StatusBadRequest)
}
