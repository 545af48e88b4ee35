package rest

import (
	"net/http"

	"quoteOptimizer/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	EstimatorHandler struct {
		source EstimatorSource
	}

	EstimatorSource interface {
		EstimatorInfo() (domain.EstimatorInfo, bool)
	}
)

func NewEstimatorHandler(source EstimatorSource) *EstimatorHandler {
	return &EstimatorHandler{source: source}
}

// GET /api/v1/estimator
func (h *EstimatorHandler) Info(c echo.Context) error {
	info, ok := h.source.EstimatorInfo()
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "estimator metadata unavailable"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(info))
}
