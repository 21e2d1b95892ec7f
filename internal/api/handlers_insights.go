package api

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/terraincognita07/dayglow/internal/insights"
)

const (
	errInvalidQuestion     = "missing or invalid question"
	errQuestionTooLong     = "question is too long"
	errModelNotConfigured  = "language model API key not configured"
	errInsightsUnavailable = "failed to generate insights"
)

type insightsRequest struct {
	Question json.RawMessage `json:"question"`
}

func (handler *Handler) PostInsights(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	question, message := parseQuestion(c.Body())
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	response, err := handler.insights.Answer(c.UserContext(), userID, question)
	if err != nil {
		kind := insights.KindOf(err)
		handler.logger.Error("insights request failed",
			zap.String("user_id", userID),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		switch kind {
		case insights.KindValidation:
			return apiError(c, fiber.StatusBadRequest, errInvalidQuestion)
		case insights.KindModelConfiguration:
			return apiError(c, fiber.StatusInternalServerError, errModelNotConfigured)
		default:
			return apiError(c, fiber.StatusInternalServerError, errInsightsUnavailable)
		}
	}
	return c.JSON(response)
}

// parseQuestion returns the question or a client-facing validation message.
func parseQuestion(body []byte) (string, string) {
	var request insightsRequest
	if err := json.Unmarshal(body, &request); err != nil {
		return "", errInvalidQuestion
	}

	var question string
	if len(request.Question) == 0 || json.Unmarshal(request.Question, &question) != nil {
		return "", errInvalidQuestion
	}
	if strings.TrimSpace(question) == "" {
		return "", errInvalidQuestion
	}
	if utf8.RuneCountInString(question) > maxQuestionLength {
		return "", errQuestionTooLong
	}
	return question, ""
}
