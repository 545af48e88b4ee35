package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"quoteOptimizer/domain"
	"quoteOptimizer/internal/offerio"
	"quoteOptimizer/pkg/logger"
	"quoteOptimizer/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const rankedFilename = "ranked_offers.csv"

type (
	SelectionHandler struct {
		engine   SelectionEngine
		history  HistoryService
		validate *validator.Validate
		timeout  time.Duration
	}

	SelectionEngine interface {
		SelectBestOffer(offers []domain.Offer, marginFloor float64) (domain.BestOffer, []domain.ScoredOffer, error)
		MarginFloor() float64
		EstimatorInfo() (domain.EstimatorInfo, bool)
	}

	HistoryService interface {
		Record(ctx context.Context, marginFloor float64, estimator string, best domain.BestOffer, ranked []domain.ScoredOffer) (domain.SelectionRecord, error)
		Get(ctx context.Context, id string) (domain.SelectionRecord, []domain.ScoredOffer, error)
		Recent(ctx context.Context, limit int) ([]domain.SelectionRecord, error)
	}

	SelectionRequest struct {
		MarginFloor *float64       `json:"margin_floor" validate:"omitempty,gte=0,lte=1"`
		Offers      []domain.Offer `json:"offers" validate:"required,min=1,dive"`
	}

	ListSelectionsQuery struct {
		Limit int `query:"limit" validate:"gte=0,lte=200"`
	}

	SelectionDetail struct {
		Record domain.SelectionRecord `json:"record"`
		Ranked []domain.ScoredOffer   `json:"ranked"`
	}
)

func NewSelectionHandler(engine SelectionEngine, history HistoryService) *SelectionHandler {
	return &SelectionHandler{
		engine:   engine,
		history:  history,
		validate: validator.New(),
		timeout:  10 * time.Second,
	}
}

// POST /api/v1/selections
func (h *SelectionHandler) Select(c echo.Context) error {
	var req SelectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	floor := h.engine.MarginFloor()
	if req.MarginFloor != nil {
		floor = *req.MarginFloor
	}

	return h.selectAndRecord(c, req.Offers, floor)
}

// POST /api/v1/selections/upload (multipart: file, margin_floor)
func (h *SelectionHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing offer file"})
	}

	format, err := offerio.DetectFormat(fh.Filename)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	floor := h.engine.MarginFloor()
	if raw := c.FormValue("margin_floor"); raw != "" {
		floor, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid margin_floor"})
		}
	}

	f, err := fh.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", "filename", fh.Filename, err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to read upload"})
	}
	defer f.Close()

	offers, err := offerio.ReadOffers(f, format)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return h.selectAndRecord(c, offers, floor)
}

func (h *SelectionHandler) selectAndRecord(c echo.Context, offers []domain.Offer, floor float64) error {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)

	best, ranked, err := h.engine.SelectBestOffer(offers, floor)
	if err != nil {
		status := selectionStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Offer selection failed", "request_id", requestID, err)
		} else {
			logger.Info("Offer selection rejected", "request_id", requestID, "reason", err.Error())
		}
		return c.JSON(status, ResponseError{Message: err.Error()})
	}

	result := domain.SelectionResult{
		MarginFloor: floor,
		Best:        best,
		Ranked:      ranked,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rec, err := h.history.Record(ctx, floor, h.estimatorName(), best, ranked)
	if err != nil {
		metrics.HistoryWriteFailures.Inc()
		logger.Warn("Selection served without history record", "request_id", requestID, err)
	} else {
		result.SelectionID = rec.ID
	}

	logger.Info("Offer selected",
		"request_id", requestID,
		"selection_id", result.SelectionID,
		"supplier_id", string(best.SupplierID),
		"offers", len(ranked),
	)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// GET /api/v1/selections?limit=20
func (h *SelectionHandler) List(c echo.Context) error {
	var q ListSelectionsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	records, err := h.history.Recent(ctx, q.Limit)
	if err != nil {
		logger.Error("Failed to list selections", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(records))
}

// GET /api/v1/selections/:id
func (h *SelectionHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rec, ranked, err := h.history.Get(ctx, c.Param("id"))
	if err != nil {
		return h.historyError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(SelectionDetail{Record: rec, Ranked: ranked}))
}

// GET /api/v1/selections/:id/ranked.csv
func (h *SelectionHandler) DownloadRanked(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	_, ranked, err := h.history.Get(ctx, c.Param("id"))
	if err != nil {
		return h.historyError(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+rankedFilename+`"`)
	res.WriteHeader(http.StatusOK)

	if err := offerio.WriteRankedCSV(res, ranked); err != nil {
		logger.Error("Failed to write ranked csv", "selection_id", c.Param("id"), err)
		return err
	}
	return nil
}

func (h *SelectionHandler) historyError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrSelectionNotFound) {
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	}
	logger.Error("Failed to load selection", "selection_id", c.Param("id"), err)
	return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
}

func (h *SelectionHandler) estimatorName() string {
	if info, ok := h.engine.EstimatorInfo(); ok {
		return info.Name
	}
	return ""
}

func selectionStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInfeasible):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
