package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/terraincognita07/dayglow/internal/auth"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	userID, err := handler.verifier.UserIDFromHeader(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		handler.logger.Debug("rejected request", zap.String("path", c.Path()), zap.Error(err))
		if errors.Is(err, auth.ErrMissingToken) {
			return apiError(c, fiber.StatusUnauthorized, "missing auth token")
		}
		return apiError(c, fiber.StatusUnauthorized, "invalid token")
	}

	c.Locals(contextUserIDKey, userID)
	return c.Next()
}
