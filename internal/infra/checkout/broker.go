package checkout

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/pkg/errs"

	"github.com/google/uuid"
)

type result struct {
	success Success
	err     error
}

type pending struct {
	ready   chan struct{}
	request Request
	done    chan result
}

// Broker connects a suspended booking flow with the browser tab running the widget.
type Broker struct {
	cfg        config.CheckoutConfig
	httpClient *http.Client
	logger     *slog.Logger

	mu       sync.Mutex
	loaded   bool
	attempts map[uuid.UUID]*pending
}

func NewBroker(cfg config.CheckoutConfig, httpClient *http.Client, logger *slog.Logger) *Broker {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Broker{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger,
		attempts:   make(map[uuid.UUID]*pending),
	}
}

// Load checks once that the checkout script is reachable. Only success is remembered.
func (b *Broker) Load(ctx context.Context) error {
	b.mu.Lock()
	loaded := b.loaded
	b.mu.Unlock()
	if loaded {
		return nil
	}
	if b.cfg.ScriptURL == "" {
		return ErrUnavailable
	}

	// The cause is logged; callers only ever see ErrUnavailable.
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, b.cfg.ScriptURL, nil)
	if err != nil {
		b.logger.Warn("invalid checkout script url", "url", b.cfg.ScriptURL, "error", err.Error())
		return ErrUnavailable
	}
	res, err := b.httpClient.Do(req)
	if err != nil {
		b.logger.Warn("checkout script unreachable", "url", b.cfg.ScriptURL, "error", err.Error())
		return ErrUnavailable
	}
	res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		b.logger.Warn("checkout script fetch rejected", "url", b.cfg.ScriptURL, "status", res.StatusCode)
		return ErrUnavailable
	}

	b.mu.Lock()
	b.loaded = true
	b.mu.Unlock()
	return nil
}

// Expect registers an attempt before its flow starts.
func (b *Broker) Expect(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.attempts[id]; ok {
		return
	}
	b.attempts[id] = &pending{
		ready: make(chan struct{}),
		done:  make(chan result, 1),
	}
}

// Release forgets an attempt. Safe to call more than once.
func (b *Broker) Release(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.attempts, id)
}

// Await blocks until Open publishes the attempt's Request or ctx ends.
func (b *Broker) Await(ctx context.Context, id uuid.UUID) (Request, error) {
	p, ok := b.lookup(id)
	if !ok {
		return Request{}, ErrUnknownAttempt
	}
	select {
	case <-p.ready:
		return p.request, nil
	case <-ctx.Done():
		return Request{}, ctx.Err()
	}
}

// Open publishes req and waits for the browser to complete or dismiss the widget.
// Running past the configured timeout counts as a dismissal.
func (b *Broker) Open(ctx context.Context, req Request) (Success, error) {
	p, ok := b.lookup(req.AttemptID)
	if !ok {
		return Success{}, ErrUnknownAttempt
	}

	b.mu.Lock()
	select {
	case <-p.ready:
		b.mu.Unlock()
		return Success{}, errs.Newf("checkout for attempt %s already opened", req.AttemptID)
	default:
	}
	p.request = req
	close(p.ready)
	b.mu.Unlock()

	var timeout <-chan time.Time
	if b.cfg.Timeout > 0 {
		t := time.NewTimer(b.cfg.Timeout)
		defer t.Stop()
		timeout = t.C
	}

	select {
	case r := <-p.done:
		return r.success, r.err
	case <-timeout:
		b.logger.Info("checkout timed out", "attempt_id", req.AttemptID.String())
		return Success{}, ErrDismissed
	case <-ctx.Done():
		return Success{}, ctx.Err()
	}
}

func (b *Broker) Complete(id uuid.UUID, s Success) error {
	return b.resolve(id, result{success: s})
}

func (b *Broker) Dismiss(id uuid.UUID) error {
	return b.resolve(id, result{err: ErrDismissed})
}

// resolve delivers the first report for an opened attempt; later ones are unknown.
func (b *Broker) resolve(id uuid.UUID, r result) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.attempts[id]
	if !ok {
		return ErrUnknownAttempt
	}
	select {
	case <-p.ready:
	default:
		return ErrUnknownAttempt
	}
	select {
	case p.done <- r:
		delete(b.attempts, id)
		return nil
	default:
		return ErrUnknownAttempt
	}
}

func (b *Broker) lookup(id uuid.UUID) (*pending, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.attempts[id]
	return p, ok
}
