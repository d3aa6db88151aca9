package ports

import (
	"context"

	"logistics/internal/core/domain/model/routeplan"
)

// RouteMapInput carries everything the manifest renderer needs to draw a
// shipment's route map.
type RouteMapInput struct {
	ShipmentID string
	RouteType  routeplan.RouteType
	RouteLabel string
	TotalCost  float64
	Currency   string
	Legs       []*routeplan.ProvisionalLeg
}

// RouteMap describes the rendered artifacts. PDFPath is nil when only the
// HTML rendering succeeded.
type RouteMap struct {
	HTMLPath    string
	PDFPath     *string
	DownloadURL string
}

// RouteMapGenerator renders the human-readable route manifest for a
// selected plan. Generation runs after commit and is best effort: failures
// surface as errs.DownstreamRenderError and degrade to a warning on the
// selection result, never an error.
type RouteMapGenerator interface {
	GenerateRouteMap(ctx context.Context, input RouteMapInput) (*RouteMap, error)
}
