package router

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/calc-tree/internal/apperr"
	"github.com/DjordjeVuckovic/calc-tree/internal/calc"
	"github.com/DjordjeVuckovic/calc-tree/internal/dto"
	"github.com/DjordjeVuckovic/calc-tree/internal/storage"
	"github.com/DjordjeVuckovic/calc-tree/pkg/pagination"
	"github.com/labstack/echo/v4"
)

type CalcRouter struct {
	e       *echo.Echo
	service *calc.Service
	history storage.Reader
}

type CalcRouterOption func(*CalcRouter)

// WithHistoryReader enables GET /history.
func WithHistoryReader(r storage.Reader) CalcRouterOption {
	return func(cr *CalcRouter) {
		cr.history = r
	}
}

func NewCalcRouter(e *echo.Echo, service *calc.Service, opts ...CalcRouterOption) *CalcRouter {
	r := &CalcRouter{
		e:       e,
		service: service,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CalcRouter) Bind() {
	r.e.POST("/evaluate", r.evaluateHandler)
	r.e.GET("/evaluate", r.evaluateQueryHandler)
	if r.history != nil {
		r.e.GET("/history", r.historyHandler)
	} else {
		slog.Info("History storage disabled, /history is not served")
	}
}

// evaluateHandler godoc
// @Summary Evaluate an arithmetic expression
// @Description Tokenizes, builds the expression tree and evaluates it. Supports + - * / and parentheses.
// @Tags calc
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Expression to evaluate"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed request"
// @Failure 422 {object} dto.ErrorResponse "Parse, structure or division-by-zero error"
// @Router /evaluate [post]
func (r *CalcRouter) evaluateHandler(c echo.Context) error {
	var req dto.EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	return r.evaluate(c, req.Expression)
}

// evaluateQueryHandler godoc
// @Summary Evaluate an arithmetic expression from the query string
// @Tags calc
// @Produce json
// @Param expression query string true "Expression to evaluate"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} dto.ErrorResponse "Missing expression"
// @Failure 422 {object} dto.ErrorResponse "Parse, structure or division-by-zero error"
// @Router /evaluate [get]
func (r *CalcRouter) evaluateQueryHandler(c echo.Context) error {
	return r.evaluate(c, c.QueryParam("expression"))
}

func (r *CalcRouter) evaluate(c echo.Context, expression string) error {
	if strings.TrimSpace(expression) == "" {
		return apperr.NewValidation("expression is required")
	}

	record, err := r.service.Evaluate(c.Request().Context(), expression)
	if err != nil {
		if _, ok := apperr.KindOf(err); !ok {
			slog.Error("Evaluation failed unexpectedly", "expression", expression, "error", err)
		}
		return err
	}

	return c.JSON(http.StatusOK, dto.NewEvaluateResponse(record))
}

// historyHandler godoc
// @Summary List recorded evaluations
// @Description Newest first, offset paginated.
// @Tags calc
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /history [get]
func (r *CalcRouter) historyHandler(c echo.Context) error {
	req, err := parseOffsetRequest(c)
	if err != nil {
		return err
	}

	result, err := r.history.List(c.Request().Context(), req.Page, req.Size)
	if err != nil {
		slog.Error("Failed to list history", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list history")
	}

	items := make([]dto.HistoryItem, 0, len(result.Items))
	for _, e := range result.Items {
		items = append(items, dto.NewHistoryItem(e))
	}

	return c.JSON(http.StatusOK, dto.HistoryResponse{
		Items:   items,
		Total:   result.Total,
		Page:    result.Page,
		Size:    result.Size,
		HasMore: result.HasMore,
	})
}

func parseOffsetRequest(c echo.Context) (pagination.OffsetRequest, error) {
	var req pagination.OffsetRequest

	if page := c.QueryParam("page"); page != "" {
		v, err := strconv.Atoi(page)
		if err != nil || v < 1 {
			return req, apperr.NewValidation("page must be a positive integer")
		}
		req.Page = v
	}

	if size := c.QueryParam("size"); size != "" {
		v, err := strconv.Atoi(size)
		if err != nil || v < 1 {
			return req, apperr.NewValidation("size must be a positive integer")
		}
		req.Size = v
	}

	req.Normalize()
	return req, nil
}
