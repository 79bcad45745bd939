package server

import (
	"crowd-server/server/handlers"

	"github.com/gorilla/mux"
)

type Router struct {
	hotspotHandler  *handlers.HotspotHandler
	calendarHandler *handlers.CalendarHandler
	heatmapHandler  *handlers.HeatmapHandler
	holidayHandler  *handlers.HolidayHandler
	forecastHandler *handlers.ForecastHandler
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	hotspotHandler *handlers.HotspotHandler,
	calendarHandler *handlers.CalendarHandler,
	heatmapHandler *handlers.HeatmapHandler,
	holidayHandler *handlers.HolidayHandler,
	forecastHandler *handlers.ForecastHandler,
	router *mux.Router) *Router {
	return &Router{
		hotspotHandler:  hotspotHandler,
		calendarHandler: calendarHandler,
		heatmapHandler:  heatmapHandler,
		holidayHandler:  holidayHandler,
		forecastHandler: forecastHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(RequestIDMiddleware, AccessLogMiddleware)

	r.router.HandleFunc("/ping", handlers.Ping).Methods("GET")

	r.router.HandleFunc("/v1/hotspots", r.hotspotHandler.ListHotspots).Methods("GET")
	// expects ?lat={latitude(float)}&lon={longitude(float)}[&radius={km(float)}][&date=YYYY-MM-DD]
	r.router.HandleFunc("/v1/hotspots/nearby", r.hotspotHandler.GetHotspotsNearby).Methods("GET")
	r.router.HandleFunc("/v1/hotspots/{name}/crowd", r.hotspotHandler.GetHotspotCrowd).Methods("GET")

	r.router.HandleFunc("/v1/heatmap", r.heatmapHandler.GetHeatmap).Methods("GET")
	r.router.HandleFunc("/v1/heatmap/chart", r.heatmapHandler.GetHeatmapChart).Methods("GET")

	r.router.HandleFunc("/v1/districts/resolve", r.calendarHandler.ResolveDistrict).Methods("GET")
	r.router.HandleFunc("/v1/districts/{district}/intensity", r.calendarHandler.GetDailyIntensity).Methods("GET")
	// expects ?destination={text}&start=YYYY-MM-DD[&end=YYYY-MM-DD]
	r.router.HandleFunc("/v1/calendar", r.calendarHandler.GetTripCalendar).Methods("GET")
	r.router.HandleFunc("/v1/calendar/chart", r.calendarHandler.GetTripCalendarChart).Methods("GET")

	r.router.HandleFunc("/v1/holidays/{country}/{year:[0-9]+}", r.holidayHandler.GetPublicHolidays).Methods("GET")
	r.router.HandleFunc("/v1/forecast", r.forecastHandler.GetForecast).Methods("GET")
}
