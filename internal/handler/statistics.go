package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mantra-gor/BillSane-Admin/internal/service"
)

const maxStatisticsDays = 366

// HandleLicenseStatistics summarizes licenses and validation traffic between
// start_date and end_date (YYYY-MM-DD, default the last 30 days).
func (h *Handler) HandleLicenseStatistics(c *fiber.Ctx) error {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -30)
	end := now

	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return h.fail(c, &service.FieldError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		}
		start = t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return h.fail(c, &service.FieldError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		}
		// Include the whole end day.
		end = t.Add(24*time.Hour - time.Nanosecond)
	}

	if end.Before(start) {
		return h.fail(c, &service.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}
	if end.Sub(start) > maxStatisticsDays*24*time.Hour {
		return h.fail(c, &service.FieldError{Field: "start_date", Message: "range must not exceed 366 days"})
	}

	stats, err := h.Statistics.LicenseStatistics(c.UserContext(), start, end)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"statistics":   stats,
		"success_rate": stats.GetSuccessRate(),
	})
}
