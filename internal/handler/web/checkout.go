package web

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"venue-booking-web/internal/domain/availability"
	"venue-booking-web/internal/handler/httperr"
	"venue-booking-web/internal/handler/middleware"
	"venue-booking-web/internal/handler/routeguard"
	"venue-booking-web/internal/infra/checkout"
	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/pkg/errs"
	"venue-booking-web/internal/usecase/booking"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingRunner interface {
	Start(ctx context.Context, in booking.Input) *booking.Attempt
	Lookup(id uuid.UUID, userID int64) (*booking.Attempt, error)
}

// CheckoutBroker is the server side of the payment widget page.
type CheckoutBroker interface {
	Await(ctx context.Context, id uuid.UUID) (checkout.Request, error)
	Complete(id uuid.UUID, s checkout.Success) error
	Dismiss(id uuid.UUID) error
}

type CheckoutHandler struct {
	runner    BookingRunner
	broker    CheckoutBroker
	venues    *VenueHandler
	scriptURL string
}

func NewCheckoutHandler(runner BookingRunner, broker CheckoutBroker, venues *VenueHandler, cfg config.CheckoutConfig) *CheckoutHandler {
	return &CheckoutHandler{
		runner:    runner,
		broker:    broker,
		venues:    venues,
		scriptURL: cfg.ScriptURL,
	}
}

type checkoutView struct {
	AttemptID string
	VenueID   int64
	ScriptURL string
	Options   checkout.Request
}

func checkoutPath(id uuid.UUID) string {
	return "/checkout/" + id.String()
}

// Book starts a booking attempt for the slot and sends the browser to its checkout page.
func (h *CheckoutHandler) Book(c *gin.Context) {
	venueID, ok := pathID(c, "id")
	if !ok {
		return
	}
	slotID, ok := pathID(c, "slotID")
	if !ok {
		return
	}

	sess := middleware.GetSession(c)
	identity, hasIdentity := sess.Identity()
	if !sess.Authenticated() || !hasIdentity {
		redirect(c, routeguard.LoginLocation("/venues/"+strconv.FormatInt(venueID, 10)))
		return
	}

	attempt := h.runner.Start(c.Request.Context(), booking.Input{
		Token:    sess.Token(),
		Identity: &identity,
		Slot: booking.Slot{
			ID:      slotID,
			VenueID: venueID,
			Status:  availability.Status(c.PostForm("status")),
		},
	})
	redirect(c, checkoutPath(attempt.ID))
}

// Checkout waits for the attempt to reach the widget and renders it. An attempt
// that ends before that is settled right away.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	attempt, ok := h.lookup(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	go func() {
		select {
		case <-attempt.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	req, err := h.broker.Await(ctx, attempt.ID)
	if err != nil {
		h.settle(c, attempt)
		return
	}

	render(c, "checkout", "Checkout", checkoutView{
		AttemptID: attempt.ID.String(),
		VenueID:   attempt.VenueID,
		ScriptURL: h.scriptURL,
		Options:   req,
	}, nil)
}

// Complete receives the widget's success callback.
func (h *CheckoutHandler) Complete(c *gin.Context) {
	attempt, ok := h.lookup(c)
	if !ok {
		return
	}

	var s checkout.Success
	if err := c.ShouldBind(&s); err != nil {
		slog.Warn("unreadable checkout callback", "attempt_id", attempt.ID.String(), "error", err.Error())
	}
	if err := h.broker.Complete(attempt.ID, s); err != nil {
		slog.Info("checkout completion not delivered", "attempt_id", attempt.ID.String(), "error", err.Error())
	}
	h.settle(c, attempt)
}

// Dismiss receives the widget's dismissal, including a script that failed to load in the browser.
func (h *CheckoutHandler) Dismiss(c *gin.Context) {
	attempt, ok := h.lookup(c)
	if !ok {
		return
	}

	if err := h.broker.Dismiss(attempt.ID); err != nil {
		slog.Info("checkout dismissal not delivered", "attempt_id", attempt.ID.String(), "error", err.Error())
	}
	h.settle(c, attempt)
}

// Result shows the outcome of an attempt, waiting for it if needed.
func (h *CheckoutHandler) Result(c *gin.Context) {
	attempt, ok := h.lookup(c)
	if !ok {
		return
	}
	h.settle(c, attempt)
}

// settle redirects a successful attempt to its target and puts a failed one
// back on the venue page with the error as banner.
func (h *CheckoutHandler) settle(c *gin.Context, attempt *booking.Attempt) {
	select {
	case <-attempt.Done():
	case <-c.Request.Context().Done():
		return
	}

	res, err := attempt.Outcome()
	if err != nil {
		h.venues.renderDetail(c, attempt.VenueID, err)
		return
	}
	redirect(c, res.Redirect)
}

func (h *CheckoutHandler) lookup(c *gin.Context) (*booking.Attempt, bool) {
	id, err := uuid.Parse(c.Param("attempt"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, errs.Mark(err, errs.ErrInvalidID), "Checkout not found", nil)
		return nil, false
	}

	_, identity := caller(c)
	attempt, err := h.runner.Lookup(id, identity.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Checkout not found", nil)
		return nil, false
	}
	return attempt, true
}
