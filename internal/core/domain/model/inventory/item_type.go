package inventory

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// ItemType identifies the physical authentication hardware a hold reserves.
type ItemType string

const (
	// ItemNFC is the sew-in NFC unit required by tier 3 shipments.
	ItemNFC ItemType = "nfc"

	// ItemTag is the security tag required by tier 2 shipments.
	ItemTag ItemType = "tag"
)

// ItemTypeFromString parses and validates an item type.
func ItemTypeFromString(s string) (ItemType, error) {
	switch ItemType(strings.ToLower(strings.TrimSpace(s))) {
	case ItemNFC:
		return ItemNFC, nil
	case ItemTag:
		return ItemTag, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"item type",
			fmt.Errorf("%q is not a known inventory item type", s),
		)
	}
}

// Requirement is the hardware a route tier demands from hub stock.
type Requirement struct {
	ItemType ItemType
	Quantity int
}

// RequirementForTier derives the hardware requirement purely from the
// shipment tier: tier 3 needs one NFC unit, tier 2 one security tag, any
// other tier needs nothing.
func RequirementForTier(tier int) (Requirement, bool) {
	switch tier {
	case 3:
		return Requirement{ItemType: ItemNFC, Quantity: 1}, true
	case 2:
		return Requirement{ItemType: ItemTag, Quantity: 1}, true
	default:
		return Requirement{}, false
	}
}

// FallbackUnitCost returns the fixed unit cost used when the proposal's
// inventory cost breakdown carries nothing for this item type.
func (it ItemType) FallbackUnitCost() float64 {
	switch it {
	case ItemNFC:
		return 25
	case ItemTag:
		return 5
	default:
		return 0
	}
}

// String returns the item type as persisted and emitted in events.
func (it ItemType) String() string {
	return string(it)
}
