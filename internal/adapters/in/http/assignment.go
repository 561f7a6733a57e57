package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// StartAssignment handles POST /api/v1/assignments.
func (s *Server) StartAssignment(ctx echo.Context) error {
	id, err := s.h.StartAssignment.Handle(ctx.Request().Context(), commands.NewStartAssignmentCommand())
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.renderSession(ctx, http.StatusCreated, id)
}

// GetAssignment handles GET /api/v1/assignments/:id.
func (s *Server) GetAssignment(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.renderSession(ctx, http.StatusOK, id)
}

// SelectAssignmentOrder handles POST /api/v1/assignments/:id/order.
func (s *Server) SelectAssignmentOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body SelectOrder
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}

	orderID, err := kernel.UUIDFromBytes(body.OrderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSelectOrderCommand(id, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.SelectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.renderSession(ctx, http.StatusOK, id)
}

// SelectAssignmentVehicle handles POST /api/v1/assignments/:id/vehicle.
func (s *Server) SelectAssignmentVehicle(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body SelectVehicle
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}

	vehicleID, err := kernel.UUIDFromBytes(body.VehicleID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSelectVehicleCommand(id, vehicleID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.SelectVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.renderSession(ctx, http.StatusOK, id)
}

// StepBackAssignment handles POST /api/v1/assignments/:id/back.
func (s *Server) StepBackAssignment(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewStepBackCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.StepBack.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.renderSession(ctx, http.StatusOK, id)
}

// ResetAssignment handles POST /api/v1/assignments/:id/reset.
func (s *Server) ResetAssignment(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewResetAssignmentCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.ResetAssignment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.renderSession(ctx, http.StatusOK, id)
}

// ConfirmAssignment handles POST /api/v1/assignments/:id/confirm.
func (s *Server) ConfirmAssignment(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewConfirmAssignmentCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.ConfirmAssignment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toAssignmentResult(res))
}

// AssignDirect handles POST /api/v1/assignments/direct. With auto set the nearest
// compatible vehicle is chosen and vehicleId is ignored.
func (s *Server) AssignDirect(ctx echo.Context) error {
	var body DirectAssignment
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}

	orderID, err := kernel.UUIDFromBytes(body.OrderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	var cmd commands.AssignVehicleCommand
	switch {
	case body.Auto:
		cmd, err = commands.NewAutoAssignVehicleCommand(orderID)
	case body.VehicleID == nil:
		return s.fail(ctx, badRequest("vehicleId is required unless auto is set"))
	default:
		vehicleID, idErr := kernel.UUIDFromBytes(body.VehicleID[:])
		if idErr != nil {
			return s.fail(ctx, idErr)
		}
		cmd, err = commands.NewAssignVehicleCommand(orderID, vehicleID)
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.AssignVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toAssignmentResult(res))
}

func (s *Server) renderSession(ctx echo.Context, code int, sessionID kernel.UUID) error {
	query, err := queries.NewGetAssignmentSessionQuery(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.AssignmentSession.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(code, toAssignmentSession(res))
}
