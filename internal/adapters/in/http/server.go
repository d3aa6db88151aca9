// Package http exposes the route selection core over HTTP.
// It coordinates between echo handlers and application use cases, mapping
// the typed application errors onto status codes and a uniform JSON error
// envelope.
package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/proposal"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SelectRouteRequest is the request body for route selection.
type SelectRouteRequest struct {
	RouteProposal *proposal.SelectedRouteProposal `json:"routeProposal"`
	ActorID       string                          `json:"actorId,omitempty"`
}

// Server implements the HTTP API for route selection and its read models.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	selectRouteHandler commands.SelectRouteCommandHandler

	// Query handlers
	getRoutePlanHandler   queries.GetRoutePlanQueryHandler
	getHubCapacityHandler queries.GetHubCapacityQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	selectRouteHandler commands.SelectRouteCommandHandler,
	getRoutePlanHandler queries.GetRoutePlanQueryHandler,
	getHubCapacityHandler queries.GetHubCapacityQueryHandler,
) *Server {
	return &Server{
		selectRouteHandler:    selectRouteHandler,
		getRoutePlanHandler:   getRoutePlanHandler,
		getHubCapacityHandler: getHubCapacityHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.POST("/api/v1/shipments/:shipmentId/route-selection", s.SelectRoute)
	e.GET("/api/v1/shipments/:shipmentId/route-plan", s.GetRoutePlan)
	e.GET("/api/v1/hubs/:hubCode/capacity", s.GetHubCapacity)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SelectRoute handles POST /api/v1/shipments/:shipmentId/route-selection.
// The body carries the selected route proposal produced by the upstream
// quoting engine, plus an optional acting operator.
func (s *Server) SelectRoute(ctx echo.Context) error {
	var request SelectRouteRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSelectRouteCommand(ctx.Param("shipmentId"), request.RouteProposal, request.ActorID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid selection request: " + err.Error(),
		})
	}

	result, err := s.selectRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetRoutePlan handles GET /api/v1/shipments/:shipmentId/route-plan.
func (s *Server) GetRoutePlan(ctx echo.Context) error {
	query, err := queries.NewGetRoutePlanQuery(ctx.Param("shipmentId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment id: " + err.Error(),
		})
	}

	plan, err := s.getRoutePlanHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, plan)
}

// GetHubCapacity handles GET /api/v1/hubs/:hubCode/capacity.
func (s *Server) GetHubCapacity(ctx echo.Context) error {
	query, err := queries.NewGetHubCapacityQuery(ctx.Param("hubCode"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid hub code: " + err.Error(),
		})
	}

	capacities, err := s.getHubCapacityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, capacities)
}

// writeError maps application errors onto the HTTP status space:
// validation → 400, missing objects → 404, lock contention → 409 (retryable),
// depleted counters → 422, everything else → 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrResourceContention):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrResourceExhausted):
		status = http.StatusUnprocessableEntity
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
