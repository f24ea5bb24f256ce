package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"greenroute/internal/modules/greenroute"
)

// Options tunes directions requests. Zero values use provider defaults.
type Options struct {
	Timeout  time.Duration
	Language string
	Region   string
	// BaseURL overrides the Maps API host (tests).
	BaseURL string
}

// RouteService handles interactions with Google Maps API.
type RouteService struct {
	client *maps.Client
	opts   Options
}

// NewRouteService creates a new RouteService with the given API Key.
func NewRouteService(apiKey string, opts Options) (*RouteService, error) {
	clientOpts := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, maps.WithBaseURL(opts.BaseURL))
	}
	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client, opts: opts}, nil
}

// Directions asks for driving directions with alternatives and returns every
// candidate route in provider order. The client treats ZERO_RESULTS as success
// with no routes, so that case yields an empty slice.
func (s *RouteService) Directions(ctx context.Context, origin, destination string, waypoints []string) ([]greenroute.Candidate, error) {
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	r := &maps.DirectionsRequest{
		Origin:       origin,
		Destination:  destination,
		Waypoints:    waypoints,
		Mode:         maps.TravelModeDriving,
		Alternatives: true,
		Language:     s.opts.Language,
		Region:       s.opts.Region,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("maps api error: %w", err)
	}
	return toCandidates(routes), nil
}

func toCandidates(routes []maps.Route) []greenroute.Candidate {
	out := make([]greenroute.Candidate, 0, len(routes))
	for _, route := range routes {
		c := greenroute.Candidate{EncodedPath: route.OverviewPolyline.Points}
		for _, leg := range route.Legs {
			if leg == nil {
				continue
			}
			c.Legs = append(c.Legs, greenroute.Leg{
				DistanceMeters:  int64(leg.Distance.Meters),
				DistanceText:    leg.Distance.HumanReadable,
				DurationSeconds: int64(leg.Duration / time.Second),
				DurationText:    humanDuration(leg.Duration),
			})
		}
		out = append(out, c)
	}
	return out
}
