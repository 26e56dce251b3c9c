package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"mediahub/internal/infrastructure/metrics"
)

// Metrics records request counts and latency labelled by route template.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			metrics.RecordRequest(c.Request().Method, route, strconv.Itoa(c.Response().Status), time.Since(start))

			// already handled above; outer middleware still sees err
			return err
		}
	}
}
