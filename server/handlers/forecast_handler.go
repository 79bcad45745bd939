package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"crowd-server/models"
	services "crowd-server/service"
)

type ForecastHandler struct {
	crowdService *services.CrowdService
}

func NewForecastHandler(crowdService *services.CrowdService) *ForecastHandler {
	return &ForecastHandler{crowdService: crowdService}
}

// GetForecast handles GET /v1/forecast?destination=&date=&country=&hour=&temp=&precip=&weather=
func (h *ForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	forecast, err := h.crowdService.GetForecast(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, forecast)
}

func (h *ForecastHandler) parseArgs(vals url.Values, w http.ResponseWriter) (req services.ForecastRequest, ok bool) {
	var err error

	req.Destination = strings.TrimSpace(vals.Get(DESTINATION_QUERY_ARG))
	if req.Destination == "" {
		invalidArgument(w, DESTINATION_QUERY_ARG)
		return
	}
	req.Date, err = parseDateArg(vals, DATE_QUERY_ARG, h.crowdService.Today())
	if err != nil {
		invalidArgument(w, DATE_QUERY_ARG)
		return
	}
	req.CountryCode = vals.Get(COUNTRY_QUERY_ARG)

	if s := vals.Get(HOUR_QUERY_ARG); s != "" {
		hour, err := strconv.Atoi(s)
		if err != nil {
			invalidArgument(w, HOUR_QUERY_ARG)
			return
		}
		req.Hour = &hour
	}

	req.Weather, ok = parseWeather(vals, w)
	return
}

// parseWeather returns nil when no weather argument is present.
func parseWeather(vals url.Values, w http.ResponseWriter) (*models.WeatherConditions, bool) {
	temp, precip, condition := vals.Get(TEMP_QUERY_ARG), vals.Get(PRECIP_QUERY_ARG), vals.Get(WEATHER_QUERY_ARG)
	if temp == "" && precip == "" && condition == "" {
		return nil, true
	}

	weather := &models.WeatherConditions{Condition: strings.ToLower(condition)}
	if temp != "" {
		t, err := parseArgFloat64(vals, TEMP_QUERY_ARG)
		if err != nil {
			invalidArgument(w, TEMP_QUERY_ARG)
			return nil, false
		}
		weather.AvgTempC = &t
	}
	if precip != "" {
		p, err := parseArgFloat64(vals, PRECIP_QUERY_ARG)
		if err != nil || p < 0 || p > 100 {
			invalidArgument(w, PRECIP_QUERY_ARG)
			return nil, false
		}
		weather.PrecipitationProbability = p
	}
	return weather, true
}
