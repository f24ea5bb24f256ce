// README: Route evaluation models (provider candidates in, normalized route results out).
package greenroute

import "errors"

// ErrNoRoutes is returned when the directions provider produced no candidates.
var ErrNoRoutes = errors.New("no routes found")

const (
	// NotAvailable is used for any human-readable field the pipeline could not fill.
	NotAvailable = "N/A"

	ColorGreen = "green"
	ColorRed   = "red"

	noRoutesMessage = "Error: No routes found or unexpected data format."
	errorPrefix     = "Error: "
)

// Leg is one provider-defined segment of a candidate route.
type Leg struct {
	DistanceMeters  int64
	DistanceText    string
	DurationSeconds int64
	DurationText    string
}

// Candidate is one route returned by the directions provider. Read-only to this package.
type Candidate struct {
	Legs        []Leg
	EncodedPath string
}

// LatLng is a decoded path point.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RouteResult is the normalized per-route output.
// Content is only set on the synthetic error result, which also leaves Coordinates nil.
type RouteResult struct {
	RouteNumber int      `json:"routeNumber,omitempty"`
	Distance    string   `json:"distance,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	FuelUsed    string   `json:"fuelUsed,omitempty"`
	RawReply    string   `json:"fuelSavingPrediction,omitempty"`
	Color       string   `json:"color,omitempty"`
	Coordinates []LatLng `json:"coordinates,omitzero"`
	Content     string   `json:"content,omitempty"`
}

// Request is the facade input.
type Request struct {
	Origin      string
	Destination string
	Waypoints   []string
}

func errorResult(content string) []RouteResult {
	return []RouteResult{{Content: content}}
}
