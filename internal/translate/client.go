// Package translate proxies text to an external machine-translation service.
//
// Per the error-handling contract, every failure mode - network error,
// non-success status, missing or unchanged response text, open circuit
// breaker - collapses into domain.ErrTranslationUnavailable. Callers get a
// distinguishable "unavailable" result, never a fabricated translation.
package translate

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
	"github.com/Sohamlkulk1122/E-consultaion/internal/metrics"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const (
	// DefaultEndpoint is the public LibreTranslate endpoint.
	DefaultEndpoint = "https://libretranslate.com/translate"

	requestTimeout = 10 * time.Second
	cacheTTL       = 24 * time.Hour

	requestsPerSecond = 5
	requestBurst      = 10
)

// Cache stores translation results keyed by target language and text hash.
// A nil Cache disables caching.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

type request struct {
	Q      string `json:"q"`
	Target string `json:"target"`
	Format string `json:"format"`
	Source string `json:"source"`
}

type response struct {
	TranslatedText string `json:"translatedText"`
}

// Client calls the translation endpoint behind a rate limiter and a circuit
// breaker.
type Client struct {
	endpoint string
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker
	limiter  *rate.Limiter
	cache    Cache
}

// NewClient builds a Client for endpoint (empty selects DefaultEndpoint).
// cache may be nil.
func NewClient(endpoint string, cache Cache) *Client {
	settings := gobreaker.Settings{
		Name:    "translate",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(_ string, _, to gobreaker.State) {
			metrics.TranslationBreakerState.Set(breakerStateValue(to))
		},
	}

	return &Client{
		endpoint: NormalizeEndpoint(endpoint),
		http:     &http.Client{Timeout: requestTimeout},
		breaker:  gobreaker.NewCircuitBreaker(settings),
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		cache:    cache,
	}
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 2
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 0
	}
}

// NormalizeEndpoint resolves a configured base URL to the /translate path.
// Bare hosts get "/translate" appended; URLs that already carry a path are
// used as given.
func NormalizeEndpoint(raw string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return DefaultEndpoint
	}
	if strings.HasSuffix(trimmed, "/translate") {
		return trimmed
	}
	rest := trimmed
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	}
	if strings.Contains(rest, "/") {
		return trimmed
	}
	return trimmed + "/translate"
}

// Translate returns text rendered into the target language. Blank input is
// returned unchanged without calling the service. All failures map to
// domain.ErrTranslationUnavailable.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	cacheKey := c.cacheKey(text, targetLang)
	if c.cache != nil {
		if cached, ok := c.cache.Get(ctx, cacheKey); ok {
			return cached, nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		metrics.TranslationRequests.WithLabelValues("unavailable").Inc()
		return "", fmt.Errorf("%w: %v", domain.ErrTranslationUnavailable, err)
	}

	result, err := c.breaker.Execute(func() (any, error) {
		return c.doRequest(ctx, text, targetLang)
	})
	if err != nil {
		metrics.TranslationRequests.WithLabelValues("unavailable").Inc()
		slog.Warn("Translation request failed", "target", targetLang, "error", err)
		return "", fmt.Errorf("%w: %v", domain.ErrTranslationUnavailable, err)
	}

	translated := result.(string)
	metrics.TranslationRequests.WithLabelValues("ok").Inc()
	if c.cache != nil {
		c.cache.Set(ctx, cacheKey, translated)
	}
	return translated, nil
}

func (c *Client) doRequest(ctx context.Context, text, targetLang string) (string, error) {
	body, err := json.Marshal(request{
		Q:      text,
		Target: targetLang,
		Format: "text",
		Source: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("translation request failed (%d): %s", resp.StatusCode, detail)
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if parsed.TranslatedText == "" {
		return "", fmt.Errorf("no translation received")
	}
	if parsed.TranslatedText == text && targetLang != "en" {
		return "", fmt.Errorf("translation unchanged")
	}
	return parsed.TranslatedText, nil
}

func (c *Client) cacheKey(text, targetLang string) string {
	sum := sha256.Sum256([]byte(text))
	return "translate:" + targetLang + ":" + hex.EncodeToString(sum[:])
}

// SupportedLanguages lists the target languages offered by the portal UI.
func SupportedLanguages() []Language {
	return []Language{
		{Code: "en", Label: "English"},
		{Code: "hi", Label: "Hindi"},
		{Code: "bn", Label: "Bengali"},
		{Code: "te", Label: "Telugu"},
		{Code: "ta", Label: "Tamil"},
		{Code: "mr", Label: "Marathi"},
		{Code: "gu", Label: "Gujarati"},
		{Code: "kn", Label: "Kannada"},
		{Code: "ml", Label: "Malayalam"},
		{Code: "pa", Label: "Punjabi"},
	}
}

// Language pairs an ISO language code with a display label.
type Language struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
