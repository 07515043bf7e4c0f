package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/agroview/backend/internal/domain"
	"github.com/agroview/backend/internal/formula"
	"github.com/agroview/backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	dashboardSvc   *service.DashboardService
	analytics      *service.AnalyticsBridge
	weatherSvc     *service.WeatherService
	recordSvc      *service.RecordService
	calculationSvc *service.CalculationService
	mode           service.AnalyticsMode
	log            *zap.Logger
}

// Services groups the dependencies of Handler.
type Services struct {
	Dashboard   *service.DashboardService
	Analytics   *service.AnalyticsBridge
	Weather     *service.WeatherService
	Records     *service.RecordService
	Calculation *service.CalculationService
	Mode        service.AnalyticsMode
}

// NewHandler creates a new handler
func NewHandler(svcs Services, log *zap.Logger) *Handler {
	return &Handler{
		dashboardSvc:   svcs.Dashboard,
		analytics:      svcs.Analytics,
		weatherSvc:     svcs.Weather,
		recordSvc:      svcs.Records,
		calculationSvc: svcs.Calculation,
		mode:           svcs.Mode,
		log:            log,
	}
}

// HealthCheck returns service and store health
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	store := "ok"
	if err := h.recordSvc.Health(c.UserContext()); err != nil {
		h.log.Warn("store health check failed", zap.Error(err))
		store = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "agroview-backend",
		"version": "1.0.0",
		"store":   store,
		"mock":    h.mode.UseMock,
	})
}

// GetMode reports whether analytics are served by the mock generator
func (h *Handler) GetMode(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"mock":    h.mode.UseMock,
		"baseUrl": h.mode.BaseURL,
	})
}

// GetDashboard returns both analytics panels and the latest records
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardSvc.GetDashboardData(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard data")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

type areaRequest struct {
	Base   formula.Field `json:"base"`
	Altura formula.Field `json:"altura"`
}

// CalculateArea computes the planting area. Incomplete input yields data:null.
func (h *Handler) CalculateArea(c *fiber.Ctx) error {
	var req areaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	out := h.calculationSvc.CalculateArea(req.Base, req.Altura)
	if out.Result == nil {
		return c.JSON(fiber.Map{"success": true, "data": nil})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    out,
	})
}

// CalculateInsumo computes and saves an insumo calculation. A failed save is
// reported next to the result.
func (h *Handler) CalculateInsumo(c *fiber.Ctx) error {
	var req service.InsumoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	out := h.calculationSvc.CalculateInsumo(c.UserContext(), req)
	if out.Result == nil {
		return c.JSON(fiber.Map{"success": true, "data": nil})
	}
	return c.JSON(fiber.Map{
		"success": out.PersistError == "",
		"data":    out,
	})
}

// ListRecords returns one filtered page of calculation records with totals
func (h *Handler) ListRecords(c *fiber.Ctx) error {
	q := service.BrowseQuery{
		PageSize: c.QueryInt("pageSize", 0),
		Cursor:   c.Query("cursor"),
		Culture:  c.Query("culture"),
		Product:  c.Query("product"),
		Days:     c.QueryInt("days", 0),
	}
	if q.PageSize < 0 || q.PageSize > domain.MaxPageSize {
		return fiber.NewError(fiber.StatusBadRequest, "pageSize must be between 1 and 200")
	}

	view, err := h.recordSvc.BrowseRecords(c.UserContext(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCursor) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    view,
	})
}

// GetStats returns summary statistics for the posted sample
func (h *Handler) GetStats(c *fiber.Ctx) error {
	var req domain.StatsRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}
	if len(req.Valores) == 0 {
		req.Valores = domain.DefaultRainfallSample
	}

	stats, err := h.analytics.GetStatsSummary(c.UserContext(), req.Valores)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute statistics")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// GetWeather returns the weather summary, São Paulo over 7 days by default
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	req := domain.WeatherRequest{
		Lat:  domain.SaoPauloLat,
		Lon:  domain.SaoPauloLon,
		Dias: domain.DefaultDias,
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}
	if req.Dias <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "dias must be positive")
	}

	weather, err := h.weatherSvc.GetWeatherSummary(c.UserContext(), req)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch weather data")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    weather,
	})
}
