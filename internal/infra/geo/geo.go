// Package geo parses the free-form "lat, lng" GPS strings the owner and
// customer surfaces store, and measures the distance between them.
package geo

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	geodist "github.com/paulmach/orb/geo"

	"kirana/internal/errors"
)

// ParsePoint parses a "lat, lng" string into an orb.Point (lng, lat order).
func ParsePoint(gps string) (orb.Point, error) {
	parts := strings.Split(gps, ",")
	if len(parts) != 2 {
		return orb.Point{}, errors.Errorf("malformed gps location: %q", gps)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, errors.Wrapf(err, "parse latitude from %q", gps)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, errors.Wrapf(err, "parse longitude from %q", gps)
	}

	return orb.Point{lng, lat}, nil
}

// DistanceMeters returns the haversine distance between two "lat, lng"
// strings. Either side failing to parse is an error; the callers treat that
// as "distance unknown" and omit it.
func DistanceMeters(fromGPS, toGPS string) (float64, error) {
	from, err := ParsePoint(fromGPS)
	if err != nil {
		return 0, err
	}
	to, err := ParsePoint(toGPS)
	if err != nil {
		return 0, err
	}

	return geodist.Distance(from, to), nil
}
