package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/generated/servers"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const internalErrorMessage = "Internal server error"

func ok(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, servers.Envelope{Success: true, Message: message, Data: data})
}

// httpStatusFor is the single mapping from error kinds to status codes.
func httpStatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrAlreadyAssigned),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler writes every error as a failed envelope. Server errors are
// logged and their details hidden from the client.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := describe(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("method", c.Request().Method),
				zap.String("route", c.Path()),
				zap.Error(err))
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, servers.Envelope{Success: false, Message: message})
		}
		if writeErr != nil {
			logger.Warn("Failed to write error response", zap.Error(writeErr))
		}
	}
}

func describe(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			return he.Code, internalErrorMessage
		}
		return he.Code, fmt.Sprint(he.Message)
	}

	status := httpStatusFor(err)
	if status >= http.StatusInternalServerError {
		return status, internalErrorMessage
	}
	return status, err.Error()
}
