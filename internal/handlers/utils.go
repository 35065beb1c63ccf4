package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"budget-planner/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	ErrInvalidPosition = fmt.Errorf("position must be an integer")
	ErrInvalidID       = fmt.Errorf("invalid transaction id")
)

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// parsePosition reads the :position path parameter as a zero-based index
func parsePosition(c echo.Context) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(c.Param("position")))
	if err != nil {
		return 0, ErrInvalidPosition
	}
	return position, nil
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}

// requestContext returns the request context carrying the trace ID for service logs
func requestContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if traceID := getTraceID(c); traceID != "" && services.TraceIDFromContext(ctx) == "" {
		ctx = services.WithTraceID(ctx, traceID)
	}
	return ctx
}
