package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Ranmdom/Desafio-Ray/internal/middleware"
	"github.com/Ranmdom/Desafio-Ray/internal/service"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// dateRange pulls the optional start/end filter off the query string.
func dateRange(c fiber.Ctx) (start, end *time.Time, errMsg string) {
	return middleware.ParseDateRange(c.Query("start"), c.Query("end"))
}

// Overview handles GET /api/overview
func (h *DashboardHandler) Overview(c fiber.Ctx) error {
	start, end, errMsg := dateRange(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_RANGE", errMsg)
	}

	overview, err := h.svc.Overview(c.Context(), start, end)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute overview")
	}
	return c.JSON(overview)
}

// TopByViews handles GET /api/highlights/top?limit=N
func (h *DashboardHandler) TopByViews(c fiber.Ctx) error {
	start, end, errMsg := dateRange(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_RANGE", errMsg)
	}
	limit, limitMsg := middleware.ValidateLimit(c.Query("limit"))
	if limitMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_LIMIT", limitMsg)
	}

	top, err := h.svc.TopByViews(c.Context(), start, end, limit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch top highlights")
	}
	return c.JSON(fiber.Map{"items": emptyIfNil(top)})
}

// MonthlyViews handles GET /api/monthly/views
func (h *DashboardHandler) MonthlyViews(c fiber.Ctx) error {
	start, end, errMsg := dateRange(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_RANGE", errMsg)
	}

	series, err := h.svc.MonthlyViews(c.Context(), start, end)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch monthly views")
	}
	return c.JSON(fiber.Map{"items": emptyIfNil(series)})
}

// MonthlyEngagement handles GET /api/monthly/engagement
func (h *DashboardHandler) MonthlyEngagement(c fiber.Ctx) error {
	start, end, errMsg := dateRange(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_RANGE", errMsg)
	}

	series, err := h.svc.MonthlyEngagement(c.Context(), start, end)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch monthly engagement")
	}
	return c.JSON(fiber.Map{"items": emptyIfNil(series)})
}

// Scatter handles GET /api/highlights — views vs like-rate per video.
func (h *DashboardHandler) Scatter(c fiber.Ctx) error {
	start, end, errMsg := dateRange(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_RANGE", errMsg)
	}

	points, err := h.svc.Scatter(c.Context(), start, end)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch highlights")
	}
	return c.JSON(fiber.Map{"items": emptyIfNil(points)})
}

// MonthlySummary handles GET /api/summary/monthly
func (h *DashboardHandler) MonthlySummary(c fiber.Ctx) error {
	out, err := h.svc.MonthlySummary(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch monthly summary")
	}
	return c.JSON(fiber.Map{"items": emptyIfNil(out)})
}

// DriverSummary handles GET /api/summary/drivers
func (h *DashboardHandler) DriverSummary(c fiber.Ctx) error {
	out, err := h.svc.DriverSummary(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch driver summary")
	}
	return c.JSON(fiber.Map{"items": emptyIfNil(out)})
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
