package nager

import (
	"context"

	"crowd-server/models"
)

// NagerAPI defines the interface for interacting with the date.nager.at API
type NagerAPI interface {
	GetPublicHolidays(ctx context.Context, year int, countryCode string) ([]models.NagerPublicHoliday, error)
}
