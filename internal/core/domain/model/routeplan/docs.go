// Package routeplan contains the frozen operational records produced by a
// route selection: the ordered provisional legs materialized from a proposal
// and the immutable SelectedRoutePlan summary referencing everything the
// selection reserved. Values frozen here are never recomputed, even when the
// upstream quote is re-run after commit.
package routeplan
