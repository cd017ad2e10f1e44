package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SessionCounter reports how many sessions the process holds.
type SessionCounter interface {
	ActiveSessions(ctx context.Context) int
}

// Status is the body of the health check endpoint.
type Status struct {
	Status         string `json:"status"`
	ActiveSessions int    `json:"activeSessions"`
	Timestamp      string `json:"timestamp"`
}

// Handler returns a handler for the health check endpoint. The process has
// no external dependencies, so it always reports healthy.
func Handler(counter SessionCounter, now func() time.Time) echo.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, Status{
			Status:         "healthy",
			ActiveSessions: counter.ActiveSessions(c.Request().Context()),
			Timestamp:      now().Format(time.RFC3339),
		})
	}
}
