package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CycleStats serves the calendar statistics view.
func (handler *Handler) CycleStats(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	stats, err := handler.cycleStats.Stats(c.UserContext(), userID)
	if err != nil {
		handler.logger.Error("cycle stats failed", zap.String("user_id", userID), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle statistics")
	}
	return c.JSON(stats)
}
