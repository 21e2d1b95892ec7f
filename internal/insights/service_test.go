package insights

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terraincognita07/dayglow/internal/models"
)

type stubCompleter struct {
	response     string
	err          error
	systemPrompt string
	userMessage  string
	hadDeadline  bool
}

func (stub *stubCompleter) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	stub.systemPrompt = systemPrompt
	stub.userMessage = userMessage
	_, stub.hadDeadline = ctx.Deadline()
	return stub.response, stub.err
}

func TestServiceAnswer(t *testing.T) {
	sources := emptySources()
	sources.Stools = stoolSourceFunc(func(context.Context, string, time.Time, int) ([]models.StoolEntry, error) {
		return []models.StoolEntry{{Type: 2}, {Type: 1}}, nil
	})
	model := &stubCompleter{response: "```json\n" + `{"answer":"Two hard stools this week.","suspects":["low fibre"],"evidence":["types 1-2"],"confidence":3,"dataUsed":["mood"]}` + "\n```"}

	service := NewService(newTestBuilder(sources, nil), model, nil, time.Second)
	got, err := service.Answer(context.Background(), "user-1", "Why is my digestion off?")
	require.NoError(t, err)

	assert.Equal(t, InsightResponse{
		Answer:     "Two hard stools this week.",
		Suspects:   []string{"low fibre"},
		Evidence:   []string{"types 1-2"},
		Confidence: 3,
		DataUsed:   []Category{CategoryStool, CategoryFood},
	}, got)
	assert.Equal(t, "Why is my digestion off?", model.userMessage)
	assert.Contains(t, model.systemPrompt, `"recentStools": "Last 2 entries: avg Bristol type 1.5. some constipation (types 1-2)."`)
	assert.Contains(t, model.systemPrompt, `"recentFoods": "No food data recorded"`)
	assert.True(t, model.hadDeadline)
}

func TestServiceAnswerWithOnlySentinels(t *testing.T) {
	model := &stubCompleter{response: `{"answer":"Everything looks great.","suspects":[],"evidence":[],"confidence":5}`}

	service := NewService(newTestBuilder(emptySources(), nil), model, nil, 0)
	got, err := service.Answer(context.Background(), "user-1", "How have I been this month?")
	require.NoError(t, err)

	assert.Equal(t, "Everything looks great. Note: I have limited data to work with. Keep tracking to get better insights!", got.Answer)
	assert.LessOrEqual(t, got.Confidence, 2)
	assert.Equal(t, allCategories, got.DataUsed)
}

func TestServiceAnswerErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		question string
		modelErr error
		want     ErrorKind
	}{
		{name: "blank question", question: "   ", want: KindValidation},
		{name: "missing key", question: "mood?", modelErr: fmt.Errorf("wrapped: %w", errors.New("llm: API key not configured")), want: KindModelConfiguration},
		{name: "provider failure", question: "mood?", modelErr: errors.New("openai status 503"), want: KindModelService},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(newTestBuilder(emptySources(), nil), &stubCompleter{err: tt.modelErr}, nil, time.Second)

			_, err := service.Answer(context.Background(), "user-1", tt.question)

			var insightsErr *Error
			require.ErrorAs(t, err, &insightsErr)
			assert.Equal(t, tt.want, insightsErr.Kind)
			assert.Equal(t, tt.want, KindOf(err))
		})
	}
}

func TestServiceAnswerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service := NewService(newTestBuilder(emptySources(), nil), &stubCompleter{}, nil, time.Second)
	_, err := service.Answer(ctx, "user-1", "how is my mood")

	assert.Equal(t, KindCancelled, KindOf(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKindOfUnclassifiedErrors(t *testing.T) {
	assert.Equal(t, KindModelService, KindOf(errors.New("boom")))
	assert.Equal(t, KindCancelled, KindOf(context.DeadlineExceeded))
}
