package nager

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"crowd-server/models"
	"crowd-server/util"

	log "github.com/sirupsen/logrus"
)

// ErrNoHolidays is returned when the fixture has nothing for a country and
// year, like the API's 404 for an unsupported country.
var ErrNoHolidays = errors.New("no public holidays")

// NagerApiClientMock serves holidays from a JSON fixture on disk.
type NagerApiClientMock struct {
	resourcePath string
}

// NewNagerApiClientMock creates a mock reading the fixture at resourcePath.
func NewNagerApiClientMock(resourcePath string) *NagerApiClientMock {
	return &NagerApiClientMock{resourcePath: resourcePath}
}

// GetPublicHolidays returns the fixture entries for the country and year.
func (c *NagerApiClientMock) GetPublicHolidays(_ context.Context, year int, countryCode string) ([]models.NagerPublicHoliday, error) {
	holidays, err := util.ReadPublicHolidaysFromJSON(c.resourcePath)
	if err != nil {
		log.Errorf("[NagerApiClientMock] Could not read public holidays from json: %v", err)
		return nil, err
	}

	prefix := strconv.Itoa(year) + "-"
	var response []models.NagerPublicHoliday
	for _, h := range holidays {
		if strings.EqualFold(h.CountryCode, countryCode) && strings.HasPrefix(h.Date, prefix) {
			response = append(response, h)
		}
	}
	if len(response) == 0 {
		return nil, fmt.Errorf("%w: %s/%d", ErrNoHolidays, strings.ToUpper(countryCode), year)
	}
	return response, nil
}
