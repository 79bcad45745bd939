package util

import (
	"encoding/json"
	"fmt"
	"os"

	"crowd-server/models"
	"crowd-server/models/hotspot"
)

// ReadPublicHolidaysFromJSON loads a date.nager.at PublicHolidays payload from disk.
func ReadPublicHolidaysFromJSON(filePath string) ([]models.NagerPublicHoliday, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var holidays []models.NagerPublicHoliday
	if err := json.Unmarshal(data, &holidays); err != nil {
		return nil, fmt.Errorf("failed to unmarshal public holidays: %w", err)
	}
	return holidays, nil
}

// ReadHotspotsFromJSON loads a hotspot catalog from disk.
func ReadHotspotsFromJSON(filePath string) ([]hotspot.Hotspot, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var hotspots []hotspot.Hotspot
	if err := json.Unmarshal(data, &hotspots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hotspots: %w", err)
	}
	return hotspots, nil
}
