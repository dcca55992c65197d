package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"serava-assistant/internal/assistant"
	assistanthttp "serava-assistant/internal/assistant/delivery/http"
	"serava-assistant/internal/auth"
	"serava-assistant/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	out assistant.PromptOutput
	err error
}

func (m *mockUseCase) ProcessPrompt(ctx context.Context, sc model.Scope, input assistant.PromptInput) (assistant.PromptOutput, error) {
	return m.out, m.err
}

func newRouter(uc assistant.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := assistanthttp.New(&mockLogger{}, uc)

	r := gin.New()
	r.POST("/api/v1/ai/prompt", h.ProcessPrompt)
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/prompt", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProcessPromptHandler(t *testing.T) {
	t.Run("success envelope", func(t *testing.T) {
		r := newRouter(&mockUseCase{out: assistant.PromptOutput{
			Parsed: assistant.ParsedIntent{Kind: assistant.KindGeneral, Reply: "hello there"},
		}})

		w := post(r, `{"prompt":"hi"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status: %d body: %s", w.Code, w.Body.String())
		}

		var resp struct {
			ErrorCode int    `json:"error_code"`
			Message   string `json:"message"`
			Data      struct {
				Parsed struct {
					Intent   string `json:"intent"`
					Response string `json:"response"`
				} `json:"parsed"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.ErrorCode != 0 || resp.Data.Parsed.Intent != "general" || resp.Data.Parsed.Response != "hello there" {
			t.Errorf("resp: %+v", resp)
		}
	})

	t.Run("missing prompt is a 400", func(t *testing.T) {
		r := newRouter(&mockUseCase{})

		if w := post(r, `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("status: %d", w.Code)
		}
	})

	t.Run("no credential is a 401", func(t *testing.T) {
		r := newRouter(&mockUseCase{err: auth.ErrNoCredential})

		if w := post(r, `{"prompt":"hi"}`); w.Code != http.StatusUnauthorized {
			t.Fatalf("status: %d", w.Code)
		}
	})

	t.Run("resolution miss is a 404 with title and date", func(t *testing.T) {
		r := newRouter(&mockUseCase{err: &assistant.EventNotFoundError{Title: "Gym", Date: "2025-06-02"}})

		w := post(r, `{"prompt":"delete gym"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status: %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "Gym") || !strings.Contains(body, "2025-06-02") {
			t.Errorf("body: %s", body)
		}
	})

	t.Run("upstream failure is a 500", func(t *testing.T) {
		r := newRouter(&mockUseCase{err: assistant.ErrUpstreamAPIFailure})

		if w := post(r, `{"prompt":"hi"}`); w.Code != http.StatusInternalServerError {
			t.Fatalf("status: %d", w.Code)
		}
	})
}
