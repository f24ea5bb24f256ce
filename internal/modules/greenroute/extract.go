package greenroute

import (
	"regexp"
	"strings"
)

var fuelPattern = regexp.MustCompile(`Fuel: (\d+(?:\.\d+)?) liters`)

const greenMarker = "efficiency: green"

// Estimate is the structured view of a model reply.
type Estimate struct {
	Fuel  string
	Color string
}

// ExtractEstimate parses a free-form model reply. Fuel and color are extracted
// independently; anything inconclusive falls back to "N/A" and "red".
func ExtractEstimate(reply string) Estimate {
	est := Estimate{Fuel: NotAvailable, Color: ColorRed}
	if reply == "" {
		return est
	}

	if m := fuelPattern.FindStringSubmatch(reply); m != nil {
		est.Fuel = m[1] + " liters"
	}
	if strings.Contains(strings.ToLower(reply), greenMarker) {
		est.Color = ColorGreen
	}
	return est
}
