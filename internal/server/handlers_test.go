package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Sohamlkulk1122/E-consultaion/internal/app"
	"github.com/Sohamlkulk1122/E-consultaion/internal/auth"
	"github.com/Sohamlkulk1122/E-consultaion/internal/catalog"
	"github.com/Sohamlkulk1122/E-consultaion/internal/config"
	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
	"github.com/Sohamlkulk1122/E-consultaion/internal/store"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// --- Mock implementations ---

type mockTranslator struct {
	translateFn func(ctx context.Context, text, targetLang string) (string, error)
}

func (m *mockTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if m.translateFn != nil {
		return m.translateFn(ctx, text, targetLang)
	}
	return "[" + targetLang + "] " + text, nil
}

type mockSpeaker struct {
	mu      sync.Mutex
	speakFn func(ctx context.Context, text, lang string) ([]byte, error)
	stopped int
}

func (m *mockSpeaker) Speak(ctx context.Context, text, lang string) ([]byte, error) {
	if m.speakFn != nil {
		return m.speakFn(ctx, text, lang)
	}
	return []byte("audio"), nil
}

func (m *mockSpeaker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped++
}

// captureMailer records verification tokens instead of sending mail.
type captureMailer struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newCaptureMailer() *captureMailer {
	return &captureMailer{tokens: make(map[string]string)}
}

func (m *captureMailer) SendVerification(_ context.Context, email, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[email] = token
	return nil
}

func (m *captureMailer) tokenFor(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[email]
}

// --- Test server setup ---

type testEnv struct {
	srv    *Server
	mem    *store.MemoryStore
	mailer *captureMailer
	clock  *clockwork.FakeClock
}

func newTestServer(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		AppEnv:        "test",
		Port:          "0",
		SessionSecret: "0123456789abcdef",
		AdminEmail:    "admin@gov.example",
		AdminPassword: "Admin@123",
	}

	drafts, err := catalog.Load("")
	require.NoError(t, err)

	mem := store.NewMemoryStore()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))
	mailer := newCaptureMailer()

	appSvc := app.NewService(mem, mem.Users(), drafts, clock)
	authSvc := auth.NewService(mem.Users(), mailer, clock, cfg.AdminEmail, cfg.AdminPassword)

	srv := NewServer(cfg, appSvc, authSvc, &mockTranslator{}, &mockSpeaker{}, nil, nil)
	return &testEnv{srv: srv, mem: mem, mailer: mailer, clock: clock}
}

func (env *testEnv) do(t *testing.T, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	env.srv.echo.ServeHTTP(rec, req)
	return rec
}

// citizenSession registers a verified account and returns its session cookies.
func (env *testEnv) citizenSession(t *testing.T, email string) []*http.Cookie {
	t.Helper()

	_, err := env.srv.auth.SignUp(context.Background(), email, "Test Citizen", "secret-pass")
	require.NoError(t, err)
	require.NoError(t, env.srv.auth.Verify(context.Background(), env.mailer.tokenFor(email)))

	rec := env.do(t, http.MethodPost, "/auth/login", `{"email":"`+email+`","password":"secret-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

// adminSession logs in with the configured administrator credentials.
func (env *testEnv) adminSession(t *testing.T) []*http.Cookie {
	t.Helper()

	rec := env.do(t, http.MethodPost, "/auth/admin/login", `{"email":"admin@gov.example","password":"Admin@123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

// seedComment stores a comment directly, bypassing the HTTP layer.
func (env *testEnv) seedComment(t *testing.T, comment domain.Comment) {
	t.Helper()
	require.NoError(t, env.mem.Add(context.Background(), comment))
}
