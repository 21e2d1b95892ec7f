package insights

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

const DefaultModelTimeout = 30 * time.Second

var ErrEmptyQuestion = errors.New("question is empty")

// Completer is the language model boundary.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

type Service struct {
	evidence     *EvidenceBuilder
	model        Completer
	logger       *zap.Logger
	modelTimeout time.Duration
}

func NewService(evidence *EvidenceBuilder, model Completer, logger *zap.Logger, modelTimeout time.Duration) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if modelTimeout <= 0 {
		modelTimeout = DefaultModelTimeout
	}
	return &Service{
		evidence:     evidence,
		model:        model,
		logger:       logger,
		modelTimeout: modelTimeout,
	}
}

// Answer runs one question through classification, evidence gathering, the
// model call and response repair. Errors are always *Error.
func (service *Service) Answer(ctx context.Context, userID string, question string) (InsightResponse, error) {
	if strings.TrimSpace(question) == "" {
		return InsightResponse{}, newError(KindValidation, ErrEmptyQuestion)
	}

	intent := Classify(question)
	logger := service.logger.With(zap.String("user_id", userID))

	pack, err := service.evidence.Build(ctx, userID, intent.Categories, intent.WindowDays)
	if err != nil {
		if ctx.Err() != nil {
			return InsightResponse{}, newError(KindCancelled, err)
		}
		return InsightResponse{}, newError(KindModelService, err)
	}
	if len(pack.Degraded) > 0 {
		logger.Info("answering with degraded evidence", zap.Any("degraded", pack.Degraded))
	}

	modelCtx, cancel := context.WithTimeout(ctx, service.modelTimeout)
	defer cancel()

	raw, err := service.model.Complete(modelCtx, ComposePrompt(pack), question)
	if err != nil {
		switch {
		case ctx.Err() != nil:
			return InsightResponse{}, newError(KindCancelled, err)
		case strings.Contains(err.Error(), "API key"):
			return InsightResponse{}, newError(KindModelConfiguration, err)
		default:
			return InsightResponse{}, newError(KindModelService, err)
		}
	}

	response := ParseModelResponse(raw, pack)
	logger.Debug("insight answered",
		zap.Any("categories", intent.Categories),
		zap.Int("window_days", intent.WindowDays),
		zap.Int("confidence", response.Confidence),
	)
	return response, nil
}
