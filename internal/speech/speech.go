// Package speech turns text into audio through an external synthesizer.
//
// Playback is long-running relative to a UI interaction, so unlike the
// analytics calls it carries explicit cancellation: at most one utterance is
// in flight, a new Speak displaces the previous one and Stop cancels
// immediately. A runtime without a configured synthesizer logs the request
// and reports ErrSpeechUnsupported; that is never escalated to a
// user-visible failure.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
	"github.com/Sohamlkulk1122/E-consultaion/internal/metrics"
)

// Synthesizer renders text to audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

// Unsupported is the synthesizer used when no TTS backend is configured.
type Unsupported struct{}

func (Unsupported) Synthesize(context.Context, string, string) ([]byte, error) {
	return nil, domain.ErrSpeechUnsupported
}

// HTTPSynthesizer posts to an external TTS service and returns the audio
// payload verbatim.
type HTTPSynthesizer struct {
	endpoint string
	http     *http.Client
}

func NewHTTPSynthesizer(endpoint string) *HTTPSynthesizer {
	return &HTTPSynthesizer{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *HTTPSynthesizer) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	body, err := json.Marshal(map[string]string{"text": text, "lang": lang})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("speech request failed (%d)", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Engine serializes utterances: starting a new one cancels the previous.
type Engine struct {
	synth Synthesizer

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

func NewEngine(synth Synthesizer) *Engine {
	if synth == nil {
		synth = Unsupported{}
	}
	return &Engine{synth: synth}
}

// Speak synthesizes text, displacing any in-flight utterance. Blank text is
// a no-op. An unsupported runtime is logged and reported as
// domain.ErrSpeechUnsupported.
func (e *Engine) Speak(ctx context.Context, text, lang string) ([]byte, error) {
	if text == "" {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	e.mu.Lock()
	if e.cancel != nil {
		e.cancel()
	}
	e.gen++
	myGen := e.gen
	e.cancel = cancel
	e.mu.Unlock()

	// Release this utterance's slot, but only if it has not already been
	// displaced by a newer Speak.
	defer func() {
		cancel()
		e.mu.Lock()
		if e.gen == myGen {
			e.cancel = nil
		}
		e.mu.Unlock()
	}()

	audio, err := e.synth.Synthesize(ctx, text, lang)
	switch {
	case errors.Is(err, domain.ErrSpeechUnsupported):
		metrics.SpeechRequests.WithLabelValues("unsupported").Inc()
		slog.Warn("Speech synthesis not supported in this runtime")
		return nil, err
	case errors.Is(err, context.Canceled):
		metrics.SpeechRequests.WithLabelValues("canceled").Inc()
		return nil, err
	case err != nil:
		metrics.SpeechRequests.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.SpeechRequests.WithLabelValues("ok").Inc()
	return audio, nil
}

// Stop cancels the in-flight utterance, if any. Stopping an idle engine is
// a no-op.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}
