package api

import (
	"context"

	"go.uber.org/zap"

	"github.com/terraincognita07/dayglow/internal/insights"
	"github.com/terraincognita07/dayglow/internal/services"
)

const maxQuestionLength = 1000

type InsightsAnswerer interface {
	Answer(ctx context.Context, userID string, question string) (insights.InsightResponse, error)
}

type CycleStatsReader interface {
	Stats(ctx context.Context, userID string) (services.CycleStatistics, error)
}

type TokenVerifier interface {
	UserIDFromHeader(header string) (string, error)
}

type Handler struct {
	insights   InsightsAnswerer
	cycleStats CycleStatsReader
	verifier   TokenVerifier
	logger     *zap.Logger
}

func NewHandler(answerer InsightsAnswerer, cycleStats CycleStatsReader, verifier TokenVerifier, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		insights:   answerer,
		cycleStats: cycleStats,
		verifier:   verifier,
		logger:     logger.Named("api"),
	}
}
