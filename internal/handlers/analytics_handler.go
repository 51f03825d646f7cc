package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Ludovic42/my-batik-store-sub001/internal/models"
	"github.com/Ludovic42/my-batik-store-sub001/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler exposes the sales analytics endpoints. It only parses the
// request and serializes results; all computation happens in the service.
type AnalyticsHandler struct {
	service *services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
	}
}

// RegisterRoutes registers the analytics routes with the Fiber app.
func (h *AnalyticsHandler) RegisterRoutes(router fiber.Router) {
	analyticsRoutes := router.Group("/analytics")
	analyticsRoutes.Get("/creators/:id/sales", h.HandleCreatorSalesSummary)
	analyticsRoutes.Get("/orders/statistics", h.HandleOrderStatistics)
}

// HandleCreatorSalesSummary computes the full sales summary of a creator.
func (h *AnalyticsHandler) HandleCreatorSalesSummary(c *fiber.Ctx) error {
	creatorID := c.Params("id")

	summary, err := h.service.ComputeCreatorSalesSummary(c.UserContext(), creatorID)
	if err != nil {
		log.Printf("Error computing sales summary for creator %s: %v", creatorID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute creator sales summary",
			"error":   err.Error(),
		})
	}
	return c.JSON(summary)
}

// HandleOrderStatistics computes order statistics for an optional filter of
// start_date, end_date (RFC 3339 or YYYY-MM-DD), status and creator_id.
func (h *AnalyticsHandler) HandleOrderStatistics(c *fiber.Ctx) error {
	query := models.OrderStatisticsQuery{
		Status:    c.Query("status"),
		CreatorID: c.Query("creator_id"),
	}

	startDate, err := parseDateParam(c.Query("start_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid start_date",
			"error":   err.Error(),
		})
	}
	query.StartDate = startDate

	endDate, err := parseDateParam(c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid end_date",
			"error":   err.Error(),
		})
	}
	query.EndDate = endDate

	stats, err := h.service.ComputeOrderStatistics(c.UserContext(), query)
	if err != nil {
		var invalidFilter *services.InvalidFilterError
		if errors.As(err, &invalidFilter) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid filter",
				"error":   err.Error(),
			})
		}
		log.Printf("Error computing order statistics: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute order statistics",
			"error":   err.Error(),
		})
	}
	return c.JSON(stats)
}

// parseDateParam parses an optional date query parameter, accepting RFC 3339
// timestamps or bare dates. A missing parameter yields a nil bound.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("date %q is not RFC 3339 or YYYY-MM-DD", value)
}
