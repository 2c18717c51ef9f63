package booking

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"venue-booking-web/internal/pkg/clock"
	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAttemptNotFound = errs.New("booking attempt not found")

// Attempt is one flow run in the background. Outcome is valid once Done is closed.
type Attempt struct {
	ID      uuid.UUID
	UserID  int64
	VenueID int64

	done       chan struct{}
	result     *Result
	err        error
	finishedAt time.Time
}

func (a *Attempt) Done() <-chan struct{} {
	return a.done
}

func (a *Attempt) Outcome() (*Result, error) {
	select {
	case <-a.done:
		return a.result, a.err
	default:
		return nil, errs.New("booking attempt still running")
	}
}

// Runner starts flows detached from the request that asked for them, so the
// browser can leave the page for the checkout and come back for the outcome.
type Runner struct {
	flow      Booker
	registrar Registrar
	clock     clock.Clock
	retention time.Duration
	logger    *slog.Logger

	mu       sync.Mutex
	attempts map[uuid.UUID]*Attempt
}

func NewRunner(flow Booker, registrar Registrar, cfg config.CheckoutConfig, clk clock.Clock, logger *slog.Logger) *Runner {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		flow:      flow,
		registrar: registrar,
		clock:     clk,
		retention: cfg.Retention,
		logger:    logger,
		attempts:  make(map[uuid.UUID]*Attempt),
	}
}

// Start assigns an attempt id when in has none and runs the flow in its own goroutine.
func (r *Runner) Start(ctx context.Context, in Input) *Attempt {
	if in.AttemptID == uuid.Nil {
		in.AttemptID = uuid.New()
	}
	a := &Attempt{
		ID:      in.AttemptID,
		VenueID: in.Slot.VenueID,
		done:    make(chan struct{}),
	}
	if in.Identity != nil {
		a.UserID = in.Identity.ID
	}

	r.mu.Lock()
	r.pruneLocked()
	r.attempts[a.ID] = a
	r.mu.Unlock()

	r.registrar.Expect(a.ID)
	runCtx := context.WithoutCancel(ctx)
	go r.run(runCtx, a, in)
	return a
}

// Lookup returns the attempt only to the user who started it.
func (r *Runner) Lookup(id uuid.UUID, userID int64) (*Attempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruneLocked()

	a, ok := r.attempts[id]
	if !ok || a.UserID != userID {
		return nil, ErrAttemptNotFound
	}
	return a, nil
}

func (r *Runner) run(ctx context.Context, a *Attempt, in Input) {
	defer r.registrar.Release(a.ID)
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("booking flow panicked", "attempt_id", a.ID.String(), "panic", p)
			r.finish(a, nil, errs.Newf("booking flow panicked: %v", p))
		}
	}()

	res, err := r.flow.Book(ctx, in)
	r.finish(a, res, err)
}

func (r *Runner) finish(a *Attempt, res *Result, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	select {
	case <-a.done:
		return
	default:
	}
	a.result = res
	a.err = err
	a.finishedAt = r.clock.Now()
	close(a.done)
}

func (r *Runner) pruneLocked() {
	now := r.clock.Now()
	for id, a := range r.attempts {
		select {
		case <-a.done:
			if now.Sub(a.finishedAt) >= r.retention {
				delete(r.attempts, id)
			}
		default:
		}
	}
}
