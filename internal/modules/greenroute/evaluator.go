// README: Route evaluator; prompts the model per candidate and assembles route results.
package greenroute

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Model is the text-completion boundary. An empty reply means the model produced no text.
type Model interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Evaluator turns provider candidates into route results. It holds no per-request state.
type Evaluator struct {
	model       Model
	concurrency int
}

// NewEvaluator returns an Evaluator. concurrency <= 1 evaluates routes one at a time.
func NewEvaluator(model Model, concurrency int) *Evaluator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Evaluator{model: model, concurrency: concurrency}
}

// Evaluate returns one result per candidate in candidate order, numbered from 1.
// A model or decode failure aborts the whole evaluation.
func (e *Evaluator) Evaluate(ctx context.Context, candidates []Candidate) ([]RouteResult, error) {
	results := make([]RouteResult, len(candidates))
	if len(candidates) == 0 {
		return results, nil
	}

	if e.concurrency == 1 {
		for i, c := range candidates {
			r, err := e.evaluateOne(ctx, i+1, c)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, c := range candidates {
		g.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = panicError{value: rec}
				}
			}()
			r, err := e.evaluateOne(gctx, i+1, c)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Evaluator) evaluateOne(ctx context.Context, number int, c Candidate) (RouteResult, error) {
	distance, duration := NotAvailable, NotAvailable
	var meters, seconds int64
	if len(c.Legs) > 0 {
		leg := c.Legs[0]
		distance, duration = leg.DistanceText, leg.DurationText
		meters, seconds = leg.DistanceMeters, leg.DurationSeconds
	}

	reply, err := e.model.Complete(ctx, BuildPrompt(meters, seconds))
	if err != nil {
		return RouteResult{}, fmt.Errorf("route %d: %w", number, err)
	}
	est := ExtractEstimate(reply)

	path, err := DecodePath(c.EncodedPath)
	if err != nil {
		return RouteResult{}, fmt.Errorf("route %d: %w", number, err)
	}

	return RouteResult{
		RouteNumber: number,
		Distance:    distance,
		Duration:    duration,
		FuelUsed:    est.Fuel,
		RawReply:    reply,
		Color:       est.Color,
		Coordinates: path,
	}, nil
}
