// Package http exposes the fleet, order, delivery, assignment and load views as a JSON API.
package http

import (
	"log/slog"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/loadcheck"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// Handlers are the use cases the server dispatches to.
type Handlers struct {
	// Command handlers
	AddVehicle        commands.AddVehicleCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	AssignVehicle     commands.AssignVehicleCommandHandler
	StartAssignment   commands.StartAssignmentCommandHandler
	SelectOrder       commands.SelectOrderCommandHandler
	SelectVehicle     commands.SelectVehicleCommandHandler
	StepBack          commands.StepBackCommandHandler
	ResetAssignment   commands.ResetAssignmentCommandHandler
	ConfirmAssignment commands.ConfirmAssignmentCommandHandler
	ToggleLoadItem    commands.ToggleLoadItemCommandHandler
	SetLoadMode       commands.SetLoadModeCommandHandler
	ConfirmLoad       commands.ConfirmLoadCommandHandler

	// Query handlers
	Dashboard          queries.GetDashboardQueryHandler
	ListVehicles       queries.ListVehiclesQueryHandler
	GetVehicle         queries.GetVehicleQueryHandler
	ListOrders         queries.ListOrdersQueryHandler
	CompatibleVehicles queries.ListCompatibleVehiclesQueryHandler
	ListDeliveries     queries.ListDeliveriesQueryHandler
	GetDelivery        queries.GetDeliveryQueryHandler
	AssignmentSession  queries.GetAssignmentSessionQueryHandler
	LoadVehicles       queries.ListLoadVehiclesQueryHandler
	LoadChecklist      queries.GetLoadChecklistQueryHandler
	Tracker            queries.GetTrackerQueryHandler
}

// Server handles HTTP requests by coordinating the application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{h: handlers, logger: logger}
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	res, err := s.h.Dashboard.Handle(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDashboard(res))
}

// GetVehicles handles GET /api/v1/vehicles?q=&status=.
func (s *Server) GetVehicles(ctx echo.Context) error {
	params, err := bindListParams(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListVehiclesQuery(params.search(), params.status())
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.ListVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, VehicleList{
		Vehicles: toVehicles(res.Vehicles),
		Tabs:     toTabs(res.Tabs),
	})
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var body NewVehicle
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}

	status := vehicle.Unknown
	if body.Status != "" {
		parsed, err := vehicle.ParseStatus(body.Status)
		if err != nil {
			return s.fail(ctx, err)
		}
		status = parsed
	}

	cmd, err := commands.NewAddVehicleCommand(
		kernel.NewUUID(),
		body.VehicleNumber,
		body.Type,
		body.Capacity,
		body.DriverName,
		body.DriverPhone,
		body.Location,
		status,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.AddVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.VehicleID().Bytes()})
}

// GetVehicle handles GET /api/v1/vehicles/:id.
func (s *Server) GetVehicle(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetVehicleQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.GetVehicle.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, VehicleDetail{
		Vehicle:    toVehicle(res.Vehicle),
		Deliveries: toDeliveries(res.Deliveries),
	})
}

// GetOrders handles GET /api/v1/orders?status=.
func (s *Server) GetOrders(ctx echo.Context) error {
	params, err := bindListParams(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(params.status())
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.listOrders(ctx, query)
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.NewListPendingOrdersQuery())
}

func (s *Server) listOrders(ctx echo.Context, query queries.ListOrdersQuery) error {
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}

	cmd, err := newCreateOrderCommand(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.OrderID().Bytes()})
}

func newCreateOrderCommand(body NewOrder) (commands.CreateOrderCommand, error) {
	destination, err := kernel.NewLocation(body.Destination.Lat, body.Destination.Lng, body.Destination.Address)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	window, err := order.NewDeliveryWindow(body.DeliveryWindow.Start, body.DeliveryWindow.End)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	priority, err := order.ParsePriority(body.Priority)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	products := make([]order.Product, 0, len(body.Products))
	for _, p := range body.Products {
		product, productErr := order.NewProduct(
			kernel.NewUUID(), p.Name, order.ProductType(p.Type), p.Quantity, p.Unit, p.CrateCount,
		)
		if productErr != nil {
			return commands.CreateOrderCommand{}, productErr
		}
		products = append(products, product)
	}

	return commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		body.OrderNumber,
		destination,
		body.RequiredCapacity,
		window,
		priority,
		products,
	)
}

// GetCompatibleVehicles handles GET /api/v1/orders/:id/compatible-vehicles.
func (s *Server) GetCompatibleVehicles(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListCompatibleVehiclesQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.CompatibleVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CompatibleVehicles{
		Order:    toOrder(res.Order),
		Vehicles: toVehicles(res.Vehicles),
		Count:    len(res.Vehicles),
	})
}

// GetDeliveries handles GET /api/v1/deliveries?q=&status=.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	params, err := bindListParams(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListDeliveriesQuery(params.search(), params.status())
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.ListDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryList{
		Deliveries: toDeliveries(res.Deliveries),
		Tabs:       toTabs(res.Tabs),
	})
}

// GetDelivery handles GET /api/v1/deliveries/:id.
func (s *Server) GetDelivery(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.h.GetDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDelivery(d))
}

// GetTracker handles GET /api/v1/tracker.
func (s *Server) GetTracker(ctx echo.Context) error {
	res, err := s.h.Tracker.Handle(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTracker(res))
}

// GetLoadVehicles handles GET /api/v1/loads/vehicles.
func (s *Server) GetLoadVehicles(ctx echo.Context) error {
	vehicles, err := s.h.LoadVehicles.Handle(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toVehicles(vehicles))
}

// GetLoadChecklist handles GET /api/v1/loads/:vehicleId.
func (s *Server) GetLoadChecklist(ctx echo.Context) error {
	id, err := pathUUID(ctx, "vehicleId")
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.renderChecklist(ctx, id)
}

// SetLoadMode handles POST /api/v1/loads/:vehicleId/mode.
func (s *Server) SetLoadMode(ctx echo.Context) error {
	id, err := pathUUID(ctx, "vehicleId")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body LoadMode
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}

	cmd, err := commands.NewSetLoadModeCommand(id, loadcheck.Mode(body.Mode))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.SetLoadMode.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.renderChecklist(ctx, id)
}

// ToggleLoadItem handles POST /api/v1/loads/:vehicleId/items/:itemId/toggle.
func (s *Server) ToggleLoadItem(ctx echo.Context) error {
	id, err := pathUUID(ctx, "vehicleId")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewToggleLoadItemCommand(id, ctx.Param("itemId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.ToggleLoadItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.renderChecklist(ctx, id)
}

// ConfirmLoad handles POST /api/v1/loads/:vehicleId/confirm.
func (s *Server) ConfirmLoad(ctx echo.Context) error {
	id, err := pathUUID(ctx, "vehicleId")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewConfirmLoadCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	confirmation, err := s.h.ConfirmLoad.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLoadConfirmation(confirmation))
}

func (s *Server) renderChecklist(ctx echo.Context, vehicleID kernel.UUID) error {
	query, err := queries.NewGetLoadChecklistQuery(vehicleID)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.LoadChecklist.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLoadChecklist(res))
}
