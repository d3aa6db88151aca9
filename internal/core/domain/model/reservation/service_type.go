package reservation

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// ServiceType identifies a hub processing service a slot can be booked for.
type ServiceType string

const (
	// ServiceAuthentication is the authenticity check of the item.
	ServiceAuthentication ServiceType = "authentication"

	// ServiceSewing is the physical attachment of an NFC unit (tier 3).
	ServiceSewing ServiceType = "sewing"

	// ServiceQA is the final quality inspection before dispatch.
	ServiceQA ServiceType = "qa"
)

// ServiceTypeFromString parses and validates a service type.
func ServiceTypeFromString(s string) (ServiceType, error) {
	switch ServiceType(strings.ToLower(strings.TrimSpace(s))) {
	case ServiceAuthentication:
		return ServiceAuthentication, nil
	case ServiceSewing:
		return ServiceSewing, nil
	case ServiceQA:
		return ServiceQA, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"service type",
			fmt.Errorf("%q is not a known hub service type", s),
		)
	}
}

// CapacityUnits returns the fixed number of hub capacity units one slot of
// this service consumes. Sewing needs a dedicated workstation and an
// operator, QA shares an inspector across two shipments.
func (s ServiceType) CapacityUnits() float64 {
	switch s {
	case ServiceAuthentication:
		return 1
	case ServiceSewing:
		return 2
	case ServiceQA:
		return 0.5
	default:
		return 0
	}
}

// Priority returns the fixed scheduling priority for this service type.
func (s ServiceType) Priority() string {
	switch s {
	case ServiceAuthentication:
		return "high"
	case ServiceSewing:
		return "medium"
	case ServiceQA:
		return "low"
	default:
		return "low"
	}
}

// String returns the service type as persisted and emitted in events.
func (s ServiceType) String() string {
	return string(s)
}
