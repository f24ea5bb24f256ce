package greenroute

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubModel answers from a function and records every prompt it was given.
type stubModel struct {
	mu      sync.Mutex
	prompts []string
	reply   func(prompt string) (string, error)
}

func (m *stubModel) Complete(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	return m.reply(prompt)
}

func fixedReply(reply string) *stubModel {
	return &stubModel{reply: func(string) (string, error) { return reply, nil }}
}

func leg(meters, seconds int64) Leg {
	return Leg{
		DistanceMeters:  meters,
		DistanceText:    fmt.Sprintf("%.1f km", float64(meters)/1000),
		DurationSeconds: seconds,
		DurationText:    fmt.Sprintf("%d mins", seconds/60),
	}
}

func TestEvaluate_NumbersRoutesInOrder(t *testing.T) {
	model := fixedReply("Fuel: 3.5 liters, Efficiency: green")
	e := NewEvaluator(model, 1)

	candidates := []Candidate{
		{Legs: []Leg{leg(1000, 120)}, EncodedPath: samplePolyline},
		{Legs: []Leg{leg(2000, 240)}},
		{Legs: []Leg{leg(3000, 360)}},
	}
	results, err := e.Evaluate(context.Background(), candidates)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, i+1, r.RouteNumber)
		assert.Equal(t, candidates[i].Legs[0].DistanceText, r.Distance)
		assert.Equal(t, candidates[i].Legs[0].DurationText, r.Duration)
		assert.Equal(t, "3.5 liters", r.FuelUsed)
		assert.Equal(t, ColorGreen, r.Color)
		assert.Equal(t, "Fuel: 3.5 liters, Efficiency: green", r.RawReply)
		assert.Empty(t, r.Content)
	}
	assert.Len(t, results[0].Coordinates, 3)
	assert.NotNil(t, results[1].Coordinates)
	assert.Empty(t, results[1].Coordinates)

	require.Len(t, model.prompts, 3)
	assert.Equal(t, BuildPrompt(1000, 120), model.prompts[0])
	assert.Equal(t, BuildPrompt(3000, 360), model.prompts[2])
}

func TestEvaluate_NoLegs(t *testing.T) {
	model := fixedReply("I don't know")
	results, err := NewEvaluator(model, 1).Evaluate(context.Background(), []Candidate{{}})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, NotAvailable, r.Distance)
	assert.Equal(t, NotAvailable, r.Duration)
	assert.Equal(t, NotAvailable, r.FuelUsed)
	assert.Equal(t, ColorRed, r.Color)
	assert.Equal(t, "I don't know", r.RawReply)
	assert.Equal(t, []string{BuildPrompt(0, 0)}, model.prompts)
}

func TestEvaluate_EmptyReplyKeepsDefaults(t *testing.T) {
	results, err := NewEvaluator(fixedReply(""), 1).Evaluate(context.Background(), []Candidate{{Legs: []Leg{leg(10, 1)}}})
	require.NoError(t, err)
	assert.Equal(t, NotAvailable, results[0].FuelUsed)
	assert.Equal(t, ColorRed, results[0].Color)
	assert.Empty(t, results[0].RawReply)
}

func TestEvaluate_EmptyInput(t *testing.T) {
	model := fixedReply("unused")
	results, err := NewEvaluator(model, 1).Evaluate(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, model.prompts)
}

func TestEvaluate_ModelErrorPropagates(t *testing.T) {
	boom := errors.New("model unavailable")
	model := &stubModel{reply: func(string) (string, error) { return "", boom }}

	_, err := NewEvaluator(model, 1).Evaluate(context.Background(), []Candidate{{Legs: []Leg{leg(1, 1)}}})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestEvaluate_MalformedPathPropagates(t *testing.T) {
	_, err := NewEvaluator(fixedReply("Fuel: 1 liters"), 1).Evaluate(context.Background(), []Candidate{{EncodedPath: "_p~iF~ps|U_ul"}})
	assert.Error(t, err)
}

func TestEvaluate_ParallelPreservesOrder(t *testing.T) {
	// Earlier routes answer later, so completion order is the reverse of candidate order.
	model := &stubModel{reply: func(prompt string) (string, error) {
		switch {
		case strings.Contains(prompt, "distance 1 meters"):
			time.Sleep(30 * time.Millisecond)
			return "Fuel: 1 liters, Efficiency: green", nil
		case strings.Contains(prompt, "distance 2 meters"):
			time.Sleep(15 * time.Millisecond)
			return "Fuel: 2 liters, Efficiency: red", nil
		default:
			return "Fuel: 3 liters, Efficiency: green", nil
		}
	}}

	candidates := []Candidate{
		{Legs: []Leg{leg(1, 1)}},
		{Legs: []Leg{leg(2, 2)}},
		{Legs: []Leg{leg(3, 3)}},
	}
	results, err := NewEvaluator(model, 3).Evaluate(context.Background(), candidates)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, want := range []string{"1 liters", "2 liters", "3 liters"} {
		assert.Equal(t, i+1, results[i].RouteNumber)
		assert.Equal(t, want, results[i].FuelUsed)
	}
	assert.Equal(t, ColorRed, results[1].Color)
}

func TestEvaluate_ParallelFailure(t *testing.T) {
	model := &stubModel{reply: func(prompt string) (string, error) {
		if strings.Contains(prompt, "distance 2 meters") {
			return "", errors.New("timeout")
		}
		return "Fuel: 1 liters", nil
	}}

	_, err := NewEvaluator(model, 2).Evaluate(context.Background(), []Candidate{
		{Legs: []Leg{leg(1, 1)}},
		{Legs: []Leg{leg(2, 2)}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}
