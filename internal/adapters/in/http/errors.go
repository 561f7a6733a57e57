package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/model/wizard"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps an application error to its HTTP status.
func statusOf(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, wizard.ErrInvalidTransition),
		errors.Is(err, commands.ErrNoCompatibleVehicle),
		errors.Is(err, vehicle.ErrInsufficientCapacity):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func messageOf(code int, err error) string {
	var notFound *errs.ObjectNotFoundError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &notFound):
		return notFound.ParamName + " not found"
	case errors.As(err, &httpErr):
		return fmt.Sprint(httpErr.Message)
	case code == http.StatusInternalServerError:
		return http.StatusText(code)
	default:
		return err.Error()
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.Error("request failed",
			slog.String("method", ctx.Request().Method),
			slog.String("path", ctx.Path()),
			slog.String("error", err.Error()),
		)
	}
	return ctx.JSON(code, Error{Code: code, Message: messageOf(code, err)})
}

// ErrorHandler renders errors that never reached a handler, such as unknown routes,
// in the same shape as handler errors.
func (s *Server) ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}
	_ = s.fail(ctx, err)
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}
