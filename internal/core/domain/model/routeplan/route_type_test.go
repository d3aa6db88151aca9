package routeplan_test

import (
	"testing"

	"logistics/internal/core/domain/model/routeplan"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteTypeFromString(t *testing.T) {
	t.Run("known types", func(t *testing.T) {
		for in, want := range map[string]routeplan.RouteType{
			"white-glove": routeplan.RouteTypeWhiteGlove,
			"dhl":         routeplan.RouteTypeDHL,
			"HYBRID":      routeplan.RouteTypeHybrid,
			" mixed ":     routeplan.RouteTypeMixed,
		} {
			got, err := routeplan.RouteTypeFromString(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := routeplan.RouteTypeFromString("teleport")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDeriveRouteType(t *testing.T) {
	cases := []struct {
		id    string
		label string
		want  routeplan.RouteType
	}{
		{"FULL_WG_PARIS_MILAN", "", routeplan.RouteTypeWhiteGlove},
		{"route-1", "Full_WG premium", routeplan.RouteTypeWhiteGlove},
		{"DHL_EXPRESS_7", "", routeplan.RouteTypeDHL},
		{"route-2", "dhl economy", routeplan.RouteTypeDHL},
		{"HYBRID_3", "", routeplan.RouteTypeHybrid},
		{"route-3", "hybrid fast", routeplan.RouteTypeHybrid},
		{"route-4", "scenic", routeplan.RouteTypeMixed},
		{"", "", routeplan.RouteTypeMixed},
		// FULL_WG outranks an embedded DHL token.
		{"FULL_WG_VIA_DHL", "", routeplan.RouteTypeWhiteGlove},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, routeplan.DeriveRouteType(tc.id, tc.label),
			"id=%q label=%q", tc.id, tc.label)
	}
}
