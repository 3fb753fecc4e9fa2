package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	point, err := ParsePoint("12.9716, 77.5946")
	require.NoError(t, err)
	assert.InDelta(t, 77.5946, point[0], 1e-9) // lng
	assert.InDelta(t, 12.9716, point[1], 1e-9) // lat
}

func TestParsePoint_Malformed(t *testing.T) {
	for _, gps := range []string{"", "12.9716", "north, east", "1,2,3"} {
		_, err := ParsePoint(gps)
		assert.Error(t, err, "gps %q", gps)
	}
}

func TestDistanceMeters(t *testing.T) {
	// Two points roughly 1.1km apart in Bengaluru.
	d, err := DistanceMeters("12.9716, 77.5946", "12.9816, 77.5946")
	require.NoError(t, err)
	assert.InDelta(t, 1110, d, 30)
}

func TestDistanceMeters_UnparseableSide(t *testing.T) {
	_, err := DistanceMeters("12.9716, 77.5946", "")
	assert.Error(t, err)
}
