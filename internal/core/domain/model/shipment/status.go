package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions so shipments
// follow the correct operational workflow.
//
// State transitions relevant to route selection:
//
//	Draft ──> Calculating ──> Planned ──> InTransit ──> Delivered
//
// Only the Calculating -> Planned transition is performed by this core;
// the surrounding platform owns the rest of the lifecycle.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status when a shipment is registered
	// but no route quoting has started yet.
	Draft

	// Calculating indicates route proposals are being computed or reviewed.
	// Shipments in this status are eligible for route selection.
	Calculating

	// Planned indicates a route has been selected and its resources reserved.
	// The transition to Planned happens only inside a committed selection.
	Planned

	// InTransit indicates the shipment is moving along its selected route.
	InTransit

	// Delivered indicates the shipment reached its destination.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Draft:       "draft",
		Calculating: "calculating",
		Planned:     "planned",
		InTransit:   "in_transit",
		Delivered:   "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:       "draft",
		Calculating: "calculating",
		Planned:     "planned",
		InTransit:   "in_transit",
		Delivered:   "delivered",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lower-case name of the status as persisted and emitted
// in domain events. Invalid values map to "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a persisted status string.
// Returns an error for strings that map to no valid status.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// ValidateSelectRoute checks whether a route may be selected from the current
// status without performing the transition.
//
// Only Calculating shipments accept a selection. A Planned shipment is
// rejected: re-selection would double-book hub capacity and stock, so a prior
// plan must be explicitly unselected upstream before a new selection.
func (s Status) ValidateSelectRoute() error {
	if s != Calculating {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to select a route from", s.String()),
		)
	}
	return nil
}

// SelectRoute returns the status after a successful route selection.
// Returns an error if the current status does not allow selection.
func (s Status) SelectRoute() (Status, error) {
	if err := s.ValidateSelectRoute(); err != nil {
		return Unknown, err
	}
	return Planned, nil
}
