package services

import (
	"strings"

	"logistics/internal/core/domain/model/routeplan"
)

// Operational follow-up workflows a selection can hand off to.
const (
	NextStepWGScheduling       = "wg-scheduling"
	NextStepCarrierLabels      = "carrier-labels"
	NextStepHubCoordination    = "hub-coordination"
	NextStepOperatorAssignment = "operator-assignment"
	NextStepTrackingSetup      = "tracking-setup"
	NextStepInternalScheduling = "internal-scheduling"
)

// NextSteps is the operational follow-up computed for a committed selection.
type NextSteps struct {
	Primary     string   `json:"primary"`
	Secondary   []string `json:"secondary"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
}

// nextStepDetails is the static description/action lookup keyed by the
// primary workflow.
var nextStepDetails = map[string]struct {
	description string
	actions     []string
}{
	NextStepWGScheduling: {
		description: "Schedule white-glove courier crews for pickup and delivery",
		actions: []string{
			"confirm-courier-availability",
			"schedule-pickup-window",
			"brief-handling-requirements",
		},
	},
	NextStepCarrierLabels: {
		description: "Generate carrier labels and book the carrier pickup",
		actions: []string{
			"generate-shipping-labels",
			"book-carrier-pickup",
			"register-tracking-numbers",
		},
	},
	NextStepHubCoordination: {
		description: "Coordinate internal hub-to-hub movement",
		actions: []string{
			"align-hub-processing-schedules",
			"allocate-internal-transport",
		},
	},
}

// NextStepPolicy is a pure domain service mapping a route's leg composition
// to the operational workflow that must run next. It has no side effects and
// no failure modes: every leg composition maps to a workflow.
//
// The decision is a function of exactly two booleans — whether the route
// contains a white-glove leg and whether it contains a carrier (DHL-style)
// leg — independent of tier, cost, or hub assignments.
type NextStepPolicy struct{}

// NewNextStepPolicy creates a NextStepPolicy instance.
func NewNextStepPolicy() NextStepPolicy {
	return NextStepPolicy{}
}

// Decide computes the follow-up workflow for the materialized legs.
func (NextStepPolicy) Decide(legs []*routeplan.ProvisionalLeg) NextSteps {
	hasWG := false
	hasCarrier := false
	for _, leg := range legs {
		if isWhiteGloveLeg(leg) {
			hasWG = true
		}
		if isCarrierLeg(leg) {
			hasCarrier = true
		}
	}

	var steps NextSteps
	switch {
	case hasWG && hasCarrier:
		steps = NextSteps{
			Primary:   NextStepWGScheduling,
			Secondary: []string{NextStepCarrierLabels, NextStepHubCoordination},
		}
	case hasWG:
		steps = NextSteps{
			Primary:   NextStepWGScheduling,
			Secondary: []string{NextStepOperatorAssignment, NextStepHubCoordination},
		}
	case hasCarrier:
		steps = NextSteps{
			Primary:   NextStepCarrierLabels,
			Secondary: []string{NextStepHubCoordination, NextStepTrackingSetup},
		}
	default:
		steps = NextSteps{
			Primary:   NextStepHubCoordination,
			Secondary: []string{NextStepInternalScheduling},
		}
	}

	if details, ok := nextStepDetails[steps.Primary]; ok {
		steps.Description = details.description
		steps.Actions = details.actions
	}

	return steps
}

func isWhiteGloveLeg(leg *routeplan.ProvisionalLeg) bool {
	legType := strings.ToLower(leg.LegType())
	carrier := strings.ToLower(leg.Carrier())
	return strings.Contains(legType, "white") || carrier == "wg"
}

func isCarrierLeg(leg *routeplan.ProvisionalLeg) bool {
	legType := strings.ToLower(leg.LegType())
	carrier := strings.ToLower(leg.Carrier())
	return strings.Contains(legType, "dhl") || strings.Contains(carrier, "dhl")
}
