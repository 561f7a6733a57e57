package http

import (
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the echo instance with request logging and panic recovery. Errors
// that never reach a handler are rendered by s.ErrorHandler.
func NewEcho(s *Server, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	}))

	return e
}

// RegisterHandlers mounts every route of the API on e. events serves the WebSocket
// stream and doc is served as /openapi.json; either may be nil.
func RegisterHandlers(e *echo.Echo, s *Server, events echo.HandlerFunc, doc *openapi3.T) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if doc != nil {
		e.GET("/openapi.json", func(c echo.Context) error {
			return c.JSON(http.StatusOK, doc)
		})
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group("/api/v1")
	api.GET("/dashboard", s.GetDashboard)

	api.GET("/vehicles", s.GetVehicles)
	api.POST("/vehicles", s.CreateVehicle)
	api.GET("/vehicles/:id", s.GetVehicle)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.GET("/orders/:id/compatible-vehicles", s.GetCompatibleVehicles)

	api.GET("/deliveries", s.GetDeliveries)
	api.GET("/deliveries/:id", s.GetDelivery)

	api.POST("/assignments", s.StartAssignment)
	api.POST("/assignments/direct", s.AssignDirect)
	api.GET("/assignments/:id", s.GetAssignment)
	api.POST("/assignments/:id/order", s.SelectAssignmentOrder)
	api.POST("/assignments/:id/vehicle", s.SelectAssignmentVehicle)
	api.POST("/assignments/:id/back", s.StepBackAssignment)
	api.POST("/assignments/:id/confirm", s.ConfirmAssignment)
	api.POST("/assignments/:id/reset", s.ResetAssignment)

	api.GET("/loads/vehicles", s.GetLoadVehicles)
	api.GET("/loads/:vehicleId", s.GetLoadChecklist)
	api.POST("/loads/:vehicleId/mode", s.SetLoadMode)
	api.POST("/loads/:vehicleId/items/:itemId/toggle", s.ToggleLoadItem)
	api.POST("/loads/:vehicleId/confirm", s.ConfirmLoad)

	api.GET("/tracker", s.GetTracker)
	if events != nil {
		api.GET("/events", events)
	}
}
