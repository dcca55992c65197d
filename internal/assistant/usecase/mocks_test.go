package usecase

import (
	"context"
	"sync"
	"time"

	"serava-assistant/internal/auth"
	"serava-assistant/pkg/datemath"
	"serava-assistant/pkg/gcalendar"
	"serava-assistant/pkg/llmprovider"
)

// mock dependencies

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

// fakeProvider replays canned replies in call order.
type fakeProvider struct {
	mu       sync.Mutex
	replies  []string
	errs     []error
	calls    int
	requests []*llmprovider.Request
}

func (p *fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.calls
	p.calls++
	p.requests = append(p.requests, req)

	if i < len(p.errs) && p.errs[i] != nil {
		return nil, p.errs[i]
	}
	reply := ""
	if i < len(p.replies) {
		reply = p.replies[i]
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  llmprovider.RoleAssistant,
			Parts: []llmprovider.Part{{Text: reply}},
		},
	}, nil
}

func (p *fakeProvider) Name() string  { return "fake" }
func (p *fakeProvider) Model() string { return "fake-1" }

type patchCall struct {
	EventID string
	Input   gcalendar.EventInput
}

type mockCalendar struct {
	mu sync.Mutex

	events    []gcalendar.Event
	listErr   error
	insertErr func(input gcalendar.EventInput) error
	patchErr  func(eventID string) error
	deleteErr func(eventID string) error

	inserted  []gcalendar.EventInput
	patched   []patchCall
	deleted   []string
	listCalls int
}

func (m *mockCalendar) ListEvents(ctx context.Context, accessToken string) ([]gcalendar.Event, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

func (m *mockCalendar) InsertEvent(ctx context.Context, accessToken string, input gcalendar.EventInput) (*gcalendar.Event, error) {
	if m.insertErr != nil {
		if err := m.insertErr(input); err != nil {
			return nil, err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserted = append(m.inserted, input)
	return &gcalendar.Event{
		ID:      "new-" + input.Summary,
		Summary: input.Summary,
		Start:   input.Start,
		End:     input.End,
		AllDay:  input.AllDay,
	}, nil
}

func (m *mockCalendar) PatchEvent(ctx context.Context, accessToken string, eventID string, input gcalendar.EventInput) (*gcalendar.Event, error) {
	if m.patchErr != nil {
		if err := m.patchErr(eventID); err != nil {
			return nil, err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.patched = append(m.patched, patchCall{EventID: eventID, Input: input})
	return &gcalendar.Event{
		ID:      eventID,
		Summary: input.Summary,
		Start:   input.Start,
		End:     input.End,
		AllDay:  input.AllDay,
	}, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, accessToken string, eventID string) error {
	if m.deleteErr != nil {
		if err := m.deleteErr(eventID); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, eventID)
	return nil
}

type mockAuthUC struct {
	token string
	err   error
}

func (m *mockAuthUC) AuthCodeURL(state string) string { return "https://consent.example/" + state }

func (m *mockAuthUC) HandleCallback(ctx context.Context, userID, code string) error { return nil }

func (m *mockAuthUC) GetValidAccessToken(ctx context.Context, userID string) (string, error) {
	return m.token, m.err
}

func (m *mockAuthUC) StoreCredential(ctx context.Context, userID string, tokens auth.OAuthTokens) error {
	return nil
}

func (m *mockAuthUC) HasCredential(ctx context.Context, userID string) (bool, error) {
	return m.token != "", nil
}

func (m *mockAuthUC) DeleteCredential(ctx context.Context, userID string) error { return nil }

// test clock: Sunday 2025-06-01 10:00 IST
func testNow(loc *time.Location) func() time.Time {
	return func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, loc) }
}

func newTestUseCase(cal *mockCalendar, authM *mockAuthUC, replies []string) (*implUseCase, *fakeProvider) {
	provider := &fakeProvider{replies: replies}
	manager := llmprovider.NewManager(
		[]llmprovider.Provider{provider},
		&llmprovider.Config{RetryAttempts: 1},
		&mockLogger{},
	)

	parser, err := datemath.NewParser("Asia/Kolkata")
	if err != nil {
		panic(err)
	}

	return &implUseCase{
		l:        &mockLogger{},
		llm:      manager,
		calendar: cal,
		authUC:   authM,
		dateMath: parser,
		now:      testNow(parser.Location()),
	}, provider
}
