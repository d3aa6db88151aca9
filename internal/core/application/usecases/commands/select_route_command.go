package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/proposal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrSelectRouteCommandIsNotConstructed = errors.New(
		"SelectRouteCommand must be created via NewSelectRouteCommand constructor",
	)
)

// SelectRouteCommand represents an operator's request to commit a computed
// route proposal for a shipment. The proposal is taken as-is from the quoting
// engine; the command only checks that it is complete enough to freeze.
//
// Example:
//
//	cmd, err := NewSelectRouteCommand("SHP-100", routeProposal, "ops.lena")
//	if err != nil {
//	    return fmt.Errorf("invalid selection request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("route selection failed: %w", err)
//	}
//	fmt.Printf("shipment %s planned, plan %s", result.ShipmentID, result.RoutePlanID)
type SelectRouteCommand struct { //nolint:recvcheck //using for validation
	shipmentID string
	proposal   *proposal.SelectedRouteProposal
	actorID    string

	guard guard.ConstructorGuard
}

// NewSelectRouteCommand creates a command to select a route for a shipment.
// Validates that the shipment id is present and the proposal carries the
// fields selection freezes (tier, cost breakdown, delivery estimate).
// The actor id may be empty; the handler substitutes the configured system
// actor.
func NewSelectRouteCommand(
	shipmentID string,
	routeProposal *proposal.SelectedRouteProposal,
	actorID string,
) (SelectRouteCommand, error) {
	selectCommand := SelectRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		selectCommand.setShipmentID(shipmentID),
		selectCommand.setProposal(routeProposal),
	); err != nil {
		return SelectRouteCommand{}, err
	}

	selectCommand.actorID = strings.TrimSpace(actorID)
	return selectCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSelectRouteCommandIsNotConstructed if validation fails.
func (c SelectRouteCommand) Validate() error {
	return c.guard.Validate(ErrSelectRouteCommandIsNotConstructed)
}

// ShipmentID returns the business identifier of the shipment being planned.
func (c SelectRouteCommand) ShipmentID() string {
	return c.shipmentID
}

// Proposal returns the route proposal to freeze.
func (c SelectRouteCommand) Proposal() *proposal.SelectedRouteProposal {
	return c.proposal
}

// ActorID returns the requesting actor, empty when the caller omitted it.
func (c SelectRouteCommand) ActorID() string {
	return c.actorID
}

func (c *SelectRouteCommand) setShipmentID(shipmentID string) error {
	if strings.TrimSpace(shipmentID) == "" {
		return errs.NewValueIsRequiredError("shipment id")
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *SelectRouteCommand) setProposal(routeProposal *proposal.SelectedRouteProposal) error {
	if err := routeProposal.Validate(); err != nil {
		return err
	}

	c.proposal = routeProposal
	return nil
}
