package nager

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"crowd-server/api"
	"crowd-server/models"
)

// NagerApiClient embeds the common HTTPClient
type NagerApiClient struct {
	*api.HTTPClient
}

// NewNagerApiClient creates a new instance of NagerApiClient
func NewNagerApiClient(httpClient *api.HTTPClient) *NagerApiClient {
	return &NagerApiClient{
		HTTPClient: httpClient,
	}
}

// GetPublicHolidays calls GET /PublicHolidays/{year}/{countryCode}.
func (c *NagerApiClient) GetPublicHolidays(ctx context.Context, year int, countryCode string) ([]models.NagerPublicHoliday, error) {
	var response []models.NagerPublicHoliday
	endpoint := fmt.Sprintf("/PublicHolidays/%d/%s", year, strings.ToUpper(countryCode))
	if err := c.Request(ctx, http.MethodGet, endpoint, nil, nil, &response); err != nil {
		return nil, fmt.Errorf("[NagerApiClient] public holidays %s/%d: %w", countryCode, year, err)
	}
	return response, nil
}
