// Package reservation contains hub slot reservations: time-bounded holds on
// a hub's processing capacity for authentication, sewing, or QA work. Every
// reservation consumes a fixed number of capacity units determined by its
// service type, decremented from the hub's capacity counter atomically with
// the reservation's insert.
package reservation
