package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

// ReleaseExpiredHoldsCommand triggers reclamation of expired hub slot
// reservations and inventory holds. Released capacity and stock are credited
// back to the hub counters.
//
// Example:
//
//	cmd := NewReleaseExpiredHoldsCommand(100)
//	handler := NewReleaseExpiredHoldsCommandHandler(uowFactory, logger)
//
//	// Run periodically from the job scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("hold expiry sweep failed: %v", err)
//	}
type ReleaseExpiredHoldsCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

var (
	ErrReleaseExpiredHoldsCommandIsNotConstructed = errors.New(
		"ReleaseExpiredHoldsCommand must be created via NewReleaseExpiredHoldsCommand constructor",
	)
)

// DefaultExpiryBatchSize bounds one sweep so a huge backlog cannot hold
// counter locks for long.
const DefaultExpiryBatchSize = 100

// NewReleaseExpiredHoldsCommand creates a command to sweep expired holds.
// A non-positive batch size falls back to DefaultExpiryBatchSize.
func NewReleaseExpiredHoldsCommand(batchSize int) ReleaseExpiredHoldsCommand {
	if batchSize <= 0 {
		batchSize = DefaultExpiryBatchSize
	}

	return ReleaseExpiredHoldsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseExpiredHoldsCommandIsNotConstructed if validation fails.
func (c *ReleaseExpiredHoldsCommand) Validate() error {
	return c.guard.Validate(ErrReleaseExpiredHoldsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of reservations and holds released in
// one sweep.
func (c *ReleaseExpiredHoldsCommand) BatchSize() int {
	return c.batchSize
}
