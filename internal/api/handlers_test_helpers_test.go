package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/terraincognita07/dayglow/internal/auth"
	"github.com/terraincognita07/dayglow/internal/db"
	"github.com/terraincognita07/dayglow/internal/insights"
	"github.com/terraincognita07/dayglow/internal/services"
)

const testUserID = "5a8e2c1d-7b3f-4d6a-9e0c-1f2b3c4d5e6f"

var testSecret = []byte(strings.Repeat("t", 32))

type stubCompleter struct {
	response string
	err      error
	calls    int
}

func (stub *stubCompleter) Complete(context.Context, string, string) (string, error) {
	stub.calls++
	return stub.response, stub.err
}

type testApp struct {
	app      *fiber.App
	database *gorm.DB
	model    *stubCompleter
	token    string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "dayglow-test.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("access sql db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	repositories := db.NewRepositories(database)
	builder := insights.NewEvidenceBuilder(insights.Sources{
		Moods:     repositories.Moods,
		Stools:    repositories.Stools,
		Foods:     repositories.Foods,
		Symptoms:  repositories.Symptoms,
		CycleDays: repositories.CycleDays,
	}, zap.NewNop(), time.UTC)

	model := &stubCompleter{}
	handler := NewHandler(
		insights.NewService(builder, model, zap.NewNop(), time.Second),
		services.NewCycleStatsService(repositories.CycleDays, time.UTC),
		auth.NewVerifier(testSecret, ""),
		zap.NewNop(),
	)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	RegisterRoutes(app, handler)

	token, err := auth.NewIssuer(testSecret, "").Issue(testUserID, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	return &testApp{app: app, database: database, model: model, token: token}
}

func (ta *testApp) postQuestion(t *testing.T, body string) (int, map[string]any) {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, "/api/insights", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+ta.token)
	return ta.do(t, request)
}

func (ta *testApp) do(t *testing.T, request *http.Request) (int, map[string]any) {
	t.Helper()
	response, err := ta.app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	payload := map[string]any{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return response.StatusCode, payload
}

func questionBody(question string) string {
	encoded, _ := json.Marshal(map[string]string{"question": question})
	return string(encoded)
}
