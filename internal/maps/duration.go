package maps

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// humanDuration renders a duration the way the Directions API "text" field does
// ("12 mins", "1 hour 5 mins", "2 days 3 hours"). The client library only keeps the seconds.
func humanDuration(d time.Duration) string {
	if d <= 0 {
		return "0 mins"
	}
	total := int(math.Round(d.Minutes()))
	if total < 1 {
		total = 1
	}
	days, hours, mins := total/(24*60), (total/60)%24, total%60

	var parts []string
	switch {
	case days > 0:
		parts = append(parts, plural(days, "day"))
		if hours > 0 {
			parts = append(parts, plural(hours, "hour"))
		}
	case hours > 0:
		parts = append(parts, plural(hours, "hour"))
		if mins > 0 {
			parts = append(parts, plural(mins, "min"))
		}
	default:
		parts = append(parts, plural(mins, "min"))
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
