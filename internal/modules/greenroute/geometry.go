package greenroute

import (
	"fmt"

	"googlemaps.github.io/maps"
)

// DecodePath decodes a provider-encoded polyline (1e5 precision). An empty
// encoding yields an empty, non-nil path. Malformed input is an error, never a truncated path.
func DecodePath(encoded string) ([]LatLng, error) {
	if encoded == "" {
		return []LatLng{}, nil
	}
	if err := validatePolyline(encoded); err != nil {
		return nil, err
	}
	points, err := maps.DecodePolyline(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode path: %w", err)
	}
	path := make([]LatLng, len(points))
	for i, p := range points {
		path[i] = LatLng{Lat: p.Lat, Lng: p.Lng}
	}
	return path, nil
}

// EncodePath is the inverse of DecodePath.
func EncodePath(path []LatLng) string {
	points := make([]maps.LatLng, len(path))
	for i, p := range path {
		points[i] = maps.LatLng{Lat: p.Lat, Lng: p.Lng}
	}
	return maps.Encode(points)
}

// validatePolyline checks that the encoding is made of complete lat/lng value pairs.
// The decoder stops quietly at a dangling value, which would drop the tail of the route.
func validatePolyline(encoded string) error {
	values := 0
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c < 63 || c > 126 {
			return fmt.Errorf("decode path: invalid character %q at offset %d", c, i)
		}
		if c-63 < 0x20 {
			values++
		}
	}
	if last := encoded[len(encoded)-1]; last-63 >= 0x20 {
		return fmt.Errorf("decode path: truncated value at end of encoding")
	}
	if values%2 != 0 {
		return fmt.Errorf("decode path: odd number of coordinates (%d)", values)
	}
	return nil
}
