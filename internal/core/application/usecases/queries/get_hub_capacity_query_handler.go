package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetHubCapacityQueryHandler reads a hub's capacity counters.
// Counter reads are not locked; the values are a snapshot and may be stale
// the moment a concurrent selection commits.
type GetHubCapacityQueryHandler struct {
	db *gorm.DB
}

// NewGetHubCapacityQueryHandler creates a handler for hub capacity queries.
// Requires a GORM database connection for query execution.
func NewGetHubCapacityQueryHandler(db *gorm.DB) GetHubCapacityQueryHandler {
	return GetHubCapacityQueryHandler{db: db}
}

// Handle executes the query.
// Returns one row per service type with a counter at the hub, ordered by
// service type. An unknown hub yields an empty slice.
func (h GetHubCapacityQueryHandler) Handle(
	ctx context.Context,
	query GetHubCapacityQuery,
) ([]GetHubCapacityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	capacities := make([]GetHubCapacityQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			hub_code,
			service_type,
			capacity
		FROM hub_capacities
		WHERE hub_code = ?
		ORDER BY service_type
	`, query.HubCode()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var capacity GetHubCapacityQueryResponse
		err = rows.Scan(
			&capacity.HubCode,
			&capacity.ServiceType,
			&capacity.Capacity,
		)
		if err != nil {
			return nil, err
		}
		capacities = append(capacities, capacity)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return capacities, nil
}
