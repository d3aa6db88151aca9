// Package shipment contains the Shipment aggregate and its lifecycle state
// machine. Route selection performs exactly one mutation of this aggregate:
// the calculating -> planned transition, committed atomically with the leg,
// reservation, hold, and route plan records created by the same selection.
package shipment
