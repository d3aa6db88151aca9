package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")
)

// Shipment is the aggregate root for a client shipment moving through the
// platform. The route selection core owns exactly one mutation of it: the
// calculating -> planned status transition, recorded together with the actor
// who performed it.
//
// Invariants:
//   - Must have a non-empty business identifier (e.g. "SHP-100")
//   - Status transitions follow the state machine defined on Status
//   - Can only be created through the factory functions
type Shipment struct {
	// id is the business identifier assigned by the platform, not a UUID
	id string

	// status is the current lifecycle state
	status Status

	// updatedBy is the actor that performed the last mutation
	updatedBy string

	// updatedAt is the time of the last mutation
	updatedAt time.Time

	// isConstructed ensures the shipment was created via a factory function
	isConstructed bool
}

// NewShipment creates a shipment in Draft status.
// The identifier must be non-blank.
func NewShipment(id string, actor string, now time.Time) (*Shipment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.NewValueIsRequiredError("shipment id")
	}

	return &Shipment{
		id:            id,
		status:        Draft,
		updatedBy:     actor,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreShipment reconstructs a shipment from persistence.
// The stored status must be valid.
func RestoreShipment(id string, status Status, updatedBy string, updatedAt time.Time) (*Shipment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.NewValueIsRequiredError("shipment id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Shipment{
		id:            id,
		status:        status,
		updatedBy:     updatedBy,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's business identifier.
func (s *Shipment) ID() string {
	return s.id
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// UpdatedBy returns the actor that performed the last mutation.
func (s *Shipment) UpdatedBy() string {
	return s.updatedBy
}

// UpdatedAt returns the time of the last mutation.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// SelectRoute transitions the shipment to Planned, recording the acting
// operator and the selection time.
//
// Business rules:
//   - Only Calculating shipments accept a selection
//   - A Planned shipment is rejected to prevent double-booking of
//     hub capacity and inventory stock
func (s *Shipment) SelectRoute(actor string, at time.Time) error {
	newStatus, err := s.status.SelectRoute()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.updatedBy = actor
	s.updatedAt = at
	return nil
}

// StartCalculating moves a Draft shipment into Calculating.
// Used by the quoting flow upstream of route selection.
func (s *Shipment) StartCalculating(actor string, at time.Time) error {
	if s.status != Draft {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start calculating from", s.status.String()),
		)
	}

	s.status = Calculating
	s.updatedBy = actor
	s.updatedAt = at
	return nil
}
