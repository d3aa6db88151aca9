// Package inventory contains inventory holds: time-bounded reservations of
// the physical authentication hardware a route tier requires (security tags
// for tier 2, NFC units for tier 3), drawn from a hub's stock counter.
package inventory
