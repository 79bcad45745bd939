package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"crowd-server/api/nager"
	"crowd-server/config"
	"crowd-server/crowd"
	"crowd-server/dao/redis"
	"crowd-server/dataset"
	"crowd-server/db"
	"crowd-server/models"
	"crowd-server/models/calendar"
	"crowd-server/models/hotspot"
	"crowd-server/server/handlers"
	services "crowd-server/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite
	router *mux.Router
}

func (s *RouterTestSuite) SetupTest() {
	dao := redis.NewRedisCrowdDAO(db.NewMockRedisClient(context.Background()))
	nagerApi := nager.NewNagerApiClientMock(filepath.Join("..", config.RESOURCES_PATH_PREFIX, config.PUBLIC_HOLIDAYS_RESOURCE))
	crowdService := services.NewCrowdService(crowd.NewEstimator(dataset.Default(), 31), dao, nagerApi, 7, "IN")
	s.Require().NoError(services.NewCrowdRefresherService(crowdService, dao, 0).Refresh(context.Background()))

	s.router = mux.NewRouter()
	NewRouter(
		handlers.NewHotspotHandler(crowdService, 25),
		handlers.NewCalendarHandler(crowdService),
		handlers.NewHeatmapHandler(crowdService),
		handlers.NewHolidayHandler(crowdService),
		handlers.NewForecastHandler(crowdService),
		s.router,
	).RegisterRoutes()
}

func (s *RouterTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *RouterTestSuite) decode(rr *httptest.ResponseRecorder, v interface{}) {
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	s.Equal("application/json", rr.Header().Get("Content-Type"))
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), v))
}

func (s *RouterTestSuite) TestStatusCodes() {
	tests := []struct {
		name       string
		path       string
		statusCode int
	}{
		{"ping", "/ping", http.StatusOK},
		{"invalid route", "/invalid", http.StatusNotFound},
		{"crowd default date", "/v1/hotspots/Hampi/crowd", http.StatusOK},
		{"crowd unknown hotspot", "/v1/hotspots/Atlantis/crowd?date=2026-10-20", http.StatusNotFound},
		{"crowd bad date", "/v1/hotspots/Hampi/crowd?date=2026-13-01", http.StatusBadRequest},
		{"nearby missing lat", "/v1/hotspots/nearby?lon=76.6", http.StatusBadRequest},
		{"nearby zero radius", "/v1/hotspots/nearby?lat=12.3&lon=76.6&radius=0", http.StatusBadRequest},
		{"nearby bad latitude", "/v1/hotspots/nearby?lat=91&lon=76.6", http.StatusBadRequest},
		{"heatmap bad date", "/v1/heatmap?date=tomorrow", http.StatusBadRequest},
		{"intensity bad date", "/v1/districts/Kodagu/intensity?date=2026-02-30", http.StatusBadRequest},
		{"calendar missing destination", "/v1/calendar?start=2026-10-20", http.StatusBadRequest},
		{"calendar missing start", "/v1/calendar?destination=Hampi", http.StatusBadRequest},
		{"calendar reversed range", "/v1/calendar?destination=Hampi&start=2026-10-22&end=2026-10-20", http.StatusBadRequest},
		{"calendar too long", "/v1/calendar?destination=Hampi&start=2026-10-01&end=2026-12-31", http.StatusBadRequest},
		{"holidays bad country", "/v1/holidays/IND/2026", http.StatusBadRequest},
		{"holidays non numeric year", "/v1/holidays/IN/next", http.StatusNotFound},
		{"forecast missing destination", "/v1/forecast?date=2026-10-02", http.StatusBadRequest},
		{"forecast bad hour", "/v1/forecast?destination=Hampi&hour=25", http.StatusBadRequest},
		{"forecast bad precip", "/v1/forecast?destination=Hampi&precip=150", http.StatusBadRequest},
		{"forecast bad temp", "/v1/forecast?destination=Hampi&temp=warm", http.StatusBadRequest},
		{"forecast NaN precip", "/v1/forecast?destination=Coorg&date=2026-10-20&precip=NaN", http.StatusBadRequest},
		{"forecast infinite temp", "/v1/forecast?destination=Coorg&date=2026-10-20&temp=Inf", http.StatusBadRequest},
		{"nearby NaN latitude", "/v1/hotspots/nearby?lat=NaN&lon=76.6", http.StatusBadRequest},
		{"nearby NaN radius", "/v1/hotspots/nearby?lat=12.3&lon=76.6&radius=NaN", http.StatusBadRequest},
	}

	for _, test := range tests {
		s.Run(test.name, func() {
			rr := s.get(test.path)
			s.Equal(test.statusCode, rr.Code, rr.Body.String())
		})
	}
}

func (s *RouterTestSuite) TestMethodNotAllowed() {
	req := httptest.NewRequest(http.MethodPost, "/v1/hotspots", nil)
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	s.Equal(http.StatusMethodNotAllowed, rr.Code)
}

func (s *RouterTestSuite) TestPingSetsRequestID() {
	rr := s.get("/ping")
	s.Equal(`{"status":"pong"}`+"\n", rr.Body.String())
	s.NotEmpty(rr.Header().Get(REQUEST_ID_HEADER))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(REQUEST_ID_HEADER, "abc-123")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal("abc-123", rec.Header().Get(REQUEST_ID_HEADER))
}

func (s *RouterTestSuite) TestListHotspots() {
	var got []hotspot.Hotspot
	s.decode(s.get("/v1/hotspots"), &got)
	s.Len(got, len(dataset.Default().Hotspots))
}

func (s *RouterTestSuite) TestGetHotspotCrowd() {
	var got hotspot.HotspotCrowd
	s.decode(s.get("/v1/hotspots/Mysore%20Palace/crowd?date=2026-10-20"), &got)

	h, _ := dataset.Default().FindHotspot("Mysore Palace")
	s.Equal("Mysore Palace", got.Hotspot.Name)
	s.Equal("2026-10-20", got.Date)
	s.Equal(crowd.CrowdLevel(h, mustDate("2026-10-20")), got.CrowdLevel)
}

func (s *RouterTestSuite) TestGetHotspotsNearby() {
	var got []hotspot.HotspotCrowd
	rr := s.get("/v1/hotspots/nearby?lat=12.305&lon=76.655&radius=5&date=2026-10-20")
	s.decode(rr, &got)

	s.Contains(rr.Body.String(), `"distance_km":0`)
	s.Require().Len(got, 2)
	s.Equal("Mysore Palace", got[0].Hotspot.Name)
	s.Equal("Chamundi Hills", got[1].Hotspot.Name)
}

func (s *RouterTestSuite) TestGetHeatmap() {
	var got models.HeatmapSnapshot
	s.decode(s.get("/v1/heatmap?date=2026-10-20"), &got)

	s.Equal("2026-10-20", got.Date)
	s.Equal(7, got.H3Resolution)
	s.Len(got.Points, len(dataset.Default().Hotspots))
	s.NotEmpty(got.Cells)
}

func (s *RouterTestSuite) TestCharts() {
	for _, path := range []string{
		"/v1/heatmap/chart?date=2026-10-20",
		"/v1/calendar/chart?destination=Coorg&start=2026-10-17&end=2026-10-24",
	} {
		rr := s.get(path)
		s.Equal(http.StatusOK, rr.Code, path)
		s.Equal("text/html; charset=utf-8", rr.Header().Get("Content-Type"))
		s.Contains(rr.Body.String(), "<html")
	}
}

func (s *RouterTestSuite) TestResolveDistrict() {
	var got handlers.DistrictResolution
	s.decode(s.get("/v1/districts/resolve?destination=Weekend%20in%20Coorg"), &got)
	s.Equal("Kodagu", got.District)

	s.decode(s.get("/v1/districts/resolve"), &got)
	s.Equal("Bengaluru Urban", got.District)
}

func (s *RouterTestSuite) TestGetDailyIntensity() {
	var got calendar.DayIntensity
	s.decode(s.get("/v1/districts/Kodagu/intensity?date=2026-10-20"), &got)

	want := crowd.DailyIntensity("Kodagu", mustDate("2026-10-20"))
	s.Equal(want.Intensity, got.Intensity)
	s.Equal("2026-10-20", got.Date)
}

func (s *RouterTestSuite) TestGetTripCalendar() {
	var got calendar.TripCalendar
	s.decode(s.get("/v1/calendar?destination=Hampi&start=2026-10-20&end=2026-10-22"), &got)

	s.Equal(3, got.DurationDays)
	s.Len(got.PerDay, 3)
	s.Equal("2026-10-20", got.StartDate)

	var single calendar.TripCalendar
	s.decode(s.get("/v1/calendar?destination=Hampi&start=2026-10-20"), &single)
	s.Equal(1, single.DurationDays)
}

func (s *RouterTestSuite) TestGetPublicHolidays() {
	var got models.HolidayList
	s.decode(s.get("/v1/holidays/in/2026"), &got)

	s.Equal("IN", got.CountryCode)
	s.Equal(2026, got.Year)
	s.Len(got.Holidays, 4)
	s.Equal(models.HolidaySourceNager, got.Holidays[0].Source)
}

func (s *RouterTestSuite) TestGetPublicHolidays_FixtureMissFallsBack() {
	var got models.HolidayList
	s.decode(s.get("/v1/holidays/DE/2026"), &got)

	s.Equal("DE", got.CountryCode)
	s.Require().Len(got.Holidays, 2)
	s.Equal(models.HolidaySourceDefault, got.Holidays[0].Source)
	s.Equal("2026-01-01", got.Holidays[0].Date)
}

func (s *RouterTestSuite) TestGetForecast() {
	var got models.CrowdForecast
	s.decode(s.get("/v1/forecast?destination=Mysore&date=2026-10-02&hour=14&temp=24&precip=10&weather=Clear"), &got)

	s.True(got.IsHoliday)
	s.Equal("Mysuru", got.District)
	s.Equal("IN", got.CountryCode)
	s.Require().NotNil(got.TimeOfDay)
	s.InDelta(0.5+0.2-0.03+0.1, got.Factors.Weather, 1e-9)
	s.Len(got.PeakHours, 4)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func mustDate(s string) time.Time {
	t, err := crowd.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}
