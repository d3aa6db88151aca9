package routeplan

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// RouteType classifies a selected route by its transport composition.
type RouteType string

const (
	// RouteTypeWhiteGlove is a route carried end to end by white-glove couriers.
	RouteTypeWhiteGlove RouteType = "white-glove"

	// RouteTypeDHL is a route carried by a commercial carrier.
	RouteTypeDHL RouteType = "dhl"

	// RouteTypeHybrid mixes white-glove and carrier segments on one route.
	RouteTypeHybrid RouteType = "hybrid"

	// RouteTypeMixed is the catch-all for routes that fit no other class.
	RouteTypeMixed RouteType = "mixed"
)

// RouteTypeFromString parses an explicitly provided route type.
func RouteTypeFromString(s string) (RouteType, error) {
	switch RouteType(strings.ToLower(strings.TrimSpace(s))) {
	case RouteTypeWhiteGlove:
		return RouteTypeWhiteGlove, nil
	case RouteTypeDHL:
		return RouteTypeDHL, nil
	case RouteTypeHybrid:
		return RouteTypeHybrid, nil
	case RouteTypeMixed:
		return RouteTypeMixed, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"route type",
			fmt.Errorf("%q is not a known route type", s),
		)
	}
}

// DeriveRouteType infers the route type from tokens embedded in the route
// id/label by legacy quoting engines. Newer proposals carry an explicit
// routeType field and never reach this fallback.
func DeriveRouteType(routeID, routeLabel string) RouteType {
	text := strings.ToUpper(routeID + " " + routeLabel)

	switch {
	case strings.Contains(text, "FULL_WG"):
		return RouteTypeWhiteGlove
	case strings.Contains(text, "HYBRID"):
		return RouteTypeHybrid
	case strings.Contains(text, "DHL"):
		return RouteTypeDHL
	default:
		return RouteTypeMixed
	}
}

// String returns the route type as persisted and emitted in events.
func (rt RouteType) String() string {
	return string(rt)
}
