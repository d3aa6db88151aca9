// Package services contains stateless domain services that coordinate
// behavior across aggregates. NextStepPolicy maps a selected route's leg
// composition to the operational workflow that must run after commit.
package services
