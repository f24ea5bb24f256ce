package greenroute

import "slices"

// Ranker orders route results. Compare follows the cmp.Compare convention.
type Ranker interface {
	Compare(a, b RouteResult) int
}

// PassThrough keeps provider order.
type PassThrough struct{}

func (PassThrough) Compare(RouteResult, RouteResult) int { return 0 }

// RankRoutes stable-sorts results in place with the given ranker and returns them.
// Route numbers are left untouched so they keep identifying the provider candidate.
func RankRoutes(results []RouteResult, r Ranker) []RouteResult {
	if r == nil {
		return results
	}
	slices.SortStableFunc(results, r.Compare)
	return results
}
