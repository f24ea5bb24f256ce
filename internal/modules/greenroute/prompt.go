package greenroute

import "fmt"

const promptTemplate = "Given a route with distance %d meters and duration %d seconds, " +
	"how much fuel (in liters) would typically be consumed by an average car? " +
	"Also, classify this route's fuel efficiency as 'green' if it's highly efficient, or 'red' if it's not. " +
	"Provide the answer in the format: 'Fuel: X liters, Efficiency: [green/red]'."

// BuildPrompt renders the evaluation prompt for one route. Same inputs always yield the same text.
func BuildPrompt(distanceMeters, durationSeconds int64) string {
	return fmt.Sprintf(promptTemplate, distanceMeters, durationSeconds)
}
