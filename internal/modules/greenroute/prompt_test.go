package greenroute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_EmbedsNumbersAndFormat(t *testing.T) {
	p := BuildPrompt(12345, 678)

	assert.Contains(t, p, "distance 12345 meters")
	assert.Contains(t, p, "duration 678 seconds")
	assert.Contains(t, p, "'Fuel: X liters, Efficiency: [green/red]'")
	assert.Contains(t, p, "'green'")
	assert.Contains(t, p, "'red'")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	assert.Equal(t, BuildPrompt(0, 0), BuildPrompt(0, 0))
	assert.NotEqual(t, BuildPrompt(1, 2), BuildPrompt(2, 1))
}
