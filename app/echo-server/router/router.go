package router

import (
	"net/http"

	"quoteOptimizer/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupSelectionRoutes(api *echo.Group, handler *rest.SelectionHandler, authRequired echo.MiddlewareFunc) {
	selections := api.Group("/selections")

	selections.POST("", handler.Select)
	selections.POST("/upload", handler.Upload)

	selections.GET("", handler.List, authRequired)
	selections.GET("/:id", handler.Get, authRequired)
	selections.GET("/:id/ranked.csv", handler.DownloadRanked, authRequired)
}

func SetupEstimatorRoutes(api *echo.Group, handler *rest.EstimatorHandler) {
	api.GET("/estimator", handler.Info)
}

func SetupOpsRoutes(e *echo.Echo, name, version string) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": name,
			"version": version,
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
