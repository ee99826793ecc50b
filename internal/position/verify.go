package position

import (
	"fmt"
	"math"

	"github.com/adrianmo/go-nmea"
)

// VerifySentence independently decodes a raw NMEA sentence with go-nmea, as
// a secondary cross-check against the core decoder's own field-by-field
// parsing. It reports the sentence's own decimal-degree position when the
// sentence carries one.
func VerifySentence(raw string) (lat, lon float64, hasPosition bool, err error) {
	s, err := nmea.Parse(raw)
	if err != nil {
		return 0, 0, false, fmt.Errorf("go-nmea parse: %w", err)
	}

	switch m := s.(type) {
	case nmea.GGA:
		return m.Latitude, m.Longitude, true, nil
	case nmea.RMC:
		return m.Latitude, m.Longitude, true, nil
	default:
		return 0, 0, false, nil
	}
}

// DiscrepancyMeters is a coarse, flat-earth approximation used only to flag
// gross cross-check mismatches, not for navigation.
func DiscrepancyMeters(lat1, lon1, lat2, lon2 float64) float64 {
	const metersPerDegreeLat = 111320.0
	dLat := (lat1 - lat2) * metersPerDegreeLat
	dLon := (lon1 - lon2) * metersPerDegreeLat
	return math.Hypot(dLat, dLon)
}
