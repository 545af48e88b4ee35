package middleware

import (
	"net/http"
	"strings"

	"quoteOptimizer/pkg/logger"
	"quoteOptimizer/pkg/utils"

	jsonres "quoteOptimizer/pkg/response"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates the bearer token against secret. An empty secret
// disables authentication.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if secret == "" {
			return next
		}

		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Missing authorization header", nil,
				))
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid authorization format", nil,
				))
			}

			tokenString := tokenParts[1]

			claims, err := utils.ParseJWT(tokenString, secret)
			if err != nil {
				logger.Warn("Rejected token", "request_id", c.Response().Header().Get(echo.HeaderXRequestID), err)
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid token", nil,
				))
			}

			if claims.UserID == "" {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Missing user ID in token", nil,
				))
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
