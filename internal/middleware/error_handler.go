package middleware

import (
	"errors"
	"net/http"
	"strings"

	"quoteOptimizer/pkg/logger"

	jsonres "quoteOptimizer/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors that escape handlers (routing misses, body
// limits, panics recovered by echo) in the same envelope the auth middleware
// uses.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled error", "path", c.Path(), err)
	}

	status := strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_"))

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, jsonres.Error(status, message, nil))
	}
	if err != nil {
		logger.Error("Failed to write error response", err)
	}
}
