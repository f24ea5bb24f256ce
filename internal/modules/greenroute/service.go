// README: Route lookup facade; fetches directions, evaluates them and turns every failure into data.
package greenroute

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// DirectionsProvider returns the candidate routes for a trip.
type DirectionsProvider interface {
	Directions(ctx context.Context, origin, destination string, waypoints []string) ([]Candidate, error)
}

// Service is the route lookup facade.
type Service struct {
	directions DirectionsProvider
	evaluator  *Evaluator
	ranker     Ranker
	log        *zap.Logger
}

func NewService(directions DirectionsProvider, evaluator *Evaluator, ranker Ranker, log *zap.Logger) *Service {
	if ranker == nil {
		ranker = PassThrough{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{directions: directions, evaluator: evaluator, ranker: ranker, log: log}
}

// FindRoutes never returns an error: failures come back as a single result
// whose Content carries the message.
func (s *Service) FindRoutes(ctx context.Context, req Request) []RouteResult {
	results, err := s.findRoutes(ctx, req)
	switch {
	case errors.Is(err, ErrNoRoutes):
		s.log.Warn("no routes",
			zap.String("origin", req.Origin),
			zap.String("destination", req.Destination))
		return errorResult(noRoutesMessage)
	case err != nil:
		s.log.Error("route lookup failed",
			zap.String("origin", req.Origin),
			zap.String("destination", req.Destination),
			zap.Strings("waypoints", req.Waypoints),
			zap.Error(err))
		return errorResult(errorPrefix + err.Error())
	}
	return results
}

func (s *Service) findRoutes(ctx context.Context, req Request) (results []RouteResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("route lookup panicked", zap.Any("panic", r), zap.Stack("stack"))
			err = panicError{value: r}
		}
	}()

	candidates, err := s.directions.Directions(ctx, req.Origin, req.Destination, req.Waypoints)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoRoutes
	}

	results, err = s.evaluator.Evaluate(ctx, candidates)
	if err != nil {
		return nil, err
	}
	return RankRoutes(results, s.ranker), nil
}

// SplitWaypoints splits a pipe-delimited waypoint list. Trailing empty entries
// are dropped, so "" and "a|" yield no waypoint and ["a"].
func SplitWaypoints(raw string) []string {
	parts := strings.Split(raw, "|")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// panicError carries a recovered panic value through the normal error path.
type panicError struct {
	value any
}

func (e panicError) Error() string {
	return fmt.Sprint(e.value)
}
