package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/Ranmdom/Desafio-Ray/internal/middleware"
	"github.com/Ranmdom/Desafio-Ray/internal/model"
	"github.com/Ranmdom/Desafio-Ray/internal/service"
)

type ExportHandler struct {
	svc *service.DashboardService
}

func NewExportHandler(svc *service.DashboardService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Export handles GET /api/export.csv
// Streams the full f1_highlights table as CSV, one row per video.
func (h *ExportHandler) Export(c fiber.Ctx) error {
	highlights, err := h.svc.AllHighlights(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read highlights")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"videoId", "title", "publishedAt",
		"viewCount", "likeCount", "commentCount",
		"latitude", "longitude", "driver", "region",
		"year", "month", "day", "weekday",
	}
	if err := w.Write(header); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build export")
	}
	for _, hl := range highlights {
		if err := w.Write(csvRow(hl)); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build export")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build export")
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", "attachment; filename=f1_highlights.csv")
	return c.Send(buf.Bytes())
}

func csvRow(h model.Highlight) []string {
	return []string{
		h.VideoID,
		h.Title,
		h.PublishedAt.UTC().Format("2006-01-02T15:04:05Z"),
		strconv.FormatInt(h.ViewCount, 10),
		strconv.FormatInt(h.LikeCount, 10),
		strconv.FormatInt(h.CommentCount, 10),
		formatCoord(h.Latitude),
		formatCoord(h.Longitude),
		h.Driver,
		formatRegion(h.Region),
		strconv.Itoa(h.Year),
		strconv.Itoa(h.Month),
		strconv.Itoa(h.Day),
		h.Weekday,
	}
}

func formatCoord(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatRegion(r *string) string {
	if r == nil {
		return ""
	}
	return *r
}
