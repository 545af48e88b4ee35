package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"quoteOptimizer/pkg/metrics"

	"github.com/labstack/echo/v4"
)

func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			status := c.Response().Status
			var he *echo.HTTPError
			if err != nil && errors.As(err, &he) {
				status = he.Code
			} else if err != nil {
				status = http.StatusInternalServerError
			}

			method := c.Request().Method
			metrics.RequestLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			metrics.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()

			return err
		}
	}
}
