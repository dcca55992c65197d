package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
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

type stubProvider struct {
	name     string
	failures int // fail this many calls before succeeding
	calls    int
}

func (p *stubProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	p.calls++
	if p.calls <= p.failures {
		return nil, errors.New("boom")
	}
	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: "ok from " + p.name}}},
		ProviderName: p.name,
	}, nil
}

func (p *stubProvider) Name() string  { return p.name }
func (p *stubProvider) Model() string { return p.name + "-model" }

func TestManagerGenerateContent(t *testing.T) {
	ctx := context.Background()
	req := &Request{Messages: []Message{{Role: RoleUser, Parts: []Part{{Text: "hi"}}}}}

	t.Run("no providers", func(t *testing.T) {
		m := NewManager(nil, &Config{}, &mockLogger{})
		if _, err := m.GenerateContent(ctx, req); !errors.Is(err, ErrNoProvidersConfigured) {
			t.Fatalf("expected no providers, got %v", err)
		}
	})

	t.Run("first provider wins", func(t *testing.T) {
		primary := &stubProvider{name: "primary"}
		backup := &stubProvider{name: "backup"}
		m := NewManager([]Provider{primary, backup}, &Config{FallbackEnabled: true, RetryAttempts: 1}, &mockLogger{})

		resp, err := m.GenerateContent(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "ok from primary" {
			t.Errorf("text: %q", resp.Text())
		}
		if backup.calls != 0 {
			t.Errorf("backup must stay cold, got %d calls", backup.calls)
		}
	})

	t.Run("falls back to the next provider", func(t *testing.T) {
		primary := &stubProvider{name: "primary", failures: 10}
		backup := &stubProvider{name: "backup"}
		m := NewManager([]Provider{primary, backup}, &Config{FallbackEnabled: true, RetryAttempts: 1}, &mockLogger{})

		resp, err := m.GenerateContent(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "ok from backup" {
			t.Errorf("text: %q", resp.Text())
		}
	})

	t.Run("retries within one provider", func(t *testing.T) {
		flaky := &stubProvider{name: "flaky", failures: 2}
		m := NewManager([]Provider{flaky}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

		resp, err := m.GenerateContent(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flaky.calls != 3 {
			t.Errorf("calls: %d", flaky.calls)
		}
		if resp.Text() != "ok from flaky" {
			t.Errorf("text: %q", resp.Text())
		}
	})

	t.Run("fallback disabled stops at the first provider", func(t *testing.T) {
		primary := &stubProvider{name: "primary", failures: 10}
		backup := &stubProvider{name: "backup"}
		m := NewManager([]Provider{primary, backup}, &Config{FallbackEnabled: false, RetryAttempts: 1}, &mockLogger{})

		if _, err := m.GenerateContent(ctx, req); !errors.Is(err, ErrAllProvidersFailed) {
			t.Fatalf("expected all providers failed, got %v", err)
		}
		if backup.calls != 0 {
			t.Errorf("backup ran with fallback disabled: %d calls", backup.calls)
		}
	})

	t.Run("all providers fail", func(t *testing.T) {
		m := NewManager([]Provider{
			&stubProvider{name: "a", failures: 10},
			&stubProvider{name: "b", failures: 10},
		}, &Config{FallbackEnabled: true, RetryAttempts: 1}, &mockLogger{})

		if _, err := m.GenerateContent(ctx, req); !errors.Is(err, ErrAllProvidersFailed) {
			t.Fatalf("expected all providers failed, got %v", err)
		}
	})
}
