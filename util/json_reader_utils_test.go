package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "fixture.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestReadPublicHolidaysFromJSON(t *testing.T) {
	p := writeTempFile(t, `[
		{"date": "2026-01-26", "localName": "Republic Day", "name": "Republic Day", "countryCode": "IN", "global": true, "types": ["Public"]},
		{"date": "2026-08-15", "localName": "Independence Day", "name": "Independence Day", "countryCode": "IN", "global": true, "launchYear": 1947}
	]`)

	holidays, err := ReadPublicHolidaysFromJSON(p)

	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, "2026-01-26", holidays[0].Date)
	assert.Equal(t, []string{"Public"}, holidays[0].Types)
	require.NotNil(t, holidays[1].LaunchYear)
	assert.Equal(t, 1947, *holidays[1].LaunchYear)
}

func TestReadPublicHolidaysFromJSON_Errors(t *testing.T) {
	_, err := ReadPublicHolidaysFromJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = ReadPublicHolidaysFromJSON(writeTempFile(t, `{"not": "a list"}`))
	assert.Error(t, err)
}

func TestReadHotspotsFromJSON(t *testing.T) {
	p := writeTempFile(t, `[
		{"name": "Hampi", "lat": 15.335, "lng": 76.46, "district": "Vijayanagara", "type": "heritage", "crowd_score": 85,
		 "peak_season": ["November", "December"], "off_season": ["May"]}
	]`)

	hotspots, err := ReadHotspotsFromJSON(p)

	require.NoError(t, err)
	require.Len(t, hotspots, 1)
	assert.Equal(t, "Hampi", hotspots[0].Name)
	assert.Equal(t, 85, hotspots[0].CrowdScore)
	assert.Equal(t, []string{"November", "December"}, hotspots[0].PeakSeason)
}
