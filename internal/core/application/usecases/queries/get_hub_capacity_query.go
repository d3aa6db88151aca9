package queries

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetHubCapacityQueryIsNotConstructed = errors.New(
		"GetHubCapacityQuery must be created via NewGetHubCapacityQuery constructor",
	)
)

// GetHubCapacityQuery retrieves the current capacity counters of one hub,
// one row per service type.
//
// Example:
//
//	query, _ := NewGetHubCapacityQuery("H1")
//	handler := NewGetHubCapacityQueryHandler(db)
//
//	capacities, err := handler.Handle(ctx, query)
//	for _, c := range capacities {
//	    fmt.Printf("%s: %.1f units left\n", c.ServiceType, c.Capacity)
//	}
type GetHubCapacityQuery struct {
	hubCode string

	guard guard.ConstructorGuard
}

// NewGetHubCapacityQuery creates a query for a hub's capacity counters.
func NewGetHubCapacityQuery(hubCode string) (GetHubCapacityQuery, error) {
	if strings.TrimSpace(hubCode) == "" {
		return GetHubCapacityQuery{}, errs.NewValueIsRequiredError("hub code")
	}

	return GetHubCapacityQuery{
		hubCode: hubCode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetHubCapacityQueryIsNotConstructed if validation fails.
func (q GetHubCapacityQuery) Validate() error {
	return q.guard.Validate(ErrGetHubCapacityQueryIsNotConstructed)
}

// HubCode returns the hub whose counters are requested.
func (q GetHubCapacityQuery) HubCode() string {
	return q.hubCode
}

// GetHubCapacityQueryResponse is one service-type capacity counter.
type GetHubCapacityQueryResponse struct {
	HubCode     string  `json:"hubCode"`
	ServiceType string  `json:"serviceType"`
	Capacity    float64 `json:"capacity"`
}
