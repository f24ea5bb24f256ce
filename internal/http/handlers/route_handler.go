// README: Route handler; GET /route returns the evaluated candidate routes.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"greenroute/internal/modules/greenroute"
)

// RouteFinder is satisfied by *greenroute.Service.
type RouteFinder interface {
	FindRoutes(ctx context.Context, req greenroute.Request) []greenroute.RouteResult
}

type RouteHandler struct {
	routes RouteFinder
}

func NewRouteHandler(routes RouteFinder) *RouteHandler {
	return &RouteHandler{routes: routes}
}

// Find handles GET /route?origin=&destination=&waypoints=a|b.
// Lookup failures are reported inside the result list with a 200.
func (h *RouteHandler) Find(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		writeError(c, http.StatusBadRequest, "missing origin or destination")
		return
	}

	results := h.routes.FindRoutes(c.Request.Context(), greenroute.Request{
		Origin:      origin,
		Destination: destination,
		Waypoints:   greenroute.SplitWaypoints(c.Query("waypoints")),
	})
	writeJSON(c, http.StatusOK, results)
}
