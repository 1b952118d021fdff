package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
)

const (
	// DateLayout is the query-parameter date format for range filters.
	DateLayout = "2006-01-02"

	DefaultTopLimit = 5
	MaxTopLimit     = 50
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ParseDateRange validates the optional start/end query values (YYYY-MM-DD,
// both inclusive from the caller's point of view). The returned end bound is
// exclusive — the end date advanced by one day — so it plugs directly into
// the repository's half-open publish filter. Nil means unbounded.
func ParseDateRange(startRaw, endRaw string) (start, end *time.Time, errMsg string) {
	if s := strings.TrimSpace(startRaw); s != "" {
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return nil, nil, "start must be a date in YYYY-MM-DD format"
		}
		start = &t
	}
	if e := strings.TrimSpace(endRaw); e != "" {
		t, err := time.Parse(DateLayout, e)
		if err != nil {
			return nil, nil, "end must be a date in YYYY-MM-DD format"
		}
		t = t.AddDate(0, 0, 1)
		end = &t
	}
	if start != nil && end != nil && !start.Before(*end) {
		return nil, nil, "start must not be after end"
	}
	return start, end, ""
}

// ValidateLimit parses the optional limit query value, applying the default
// and the upper cap.
func ValidateLimit(raw string) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultTopLimit, ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, "limit must be a positive integer"
	}
	if n > MaxTopLimit {
		return 0, "limit must be at most 50"
	}
	return n, ""
}
