// Package booking drives one booking attempt through reserve, validate,
// checkout, settle and reconcile. Steps run strictly in order and the first
// failure ends the attempt.
package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"venue-booking-web/internal/domain/availability"
	domain "venue-booking-web/internal/domain/booking"
	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/infra/backend"
	"venue-booking-web/internal/infra/checkout"
	"venue-booking-web/internal/infra/metrics"
	"venue-booking-web/internal/infra/querycache"
	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/pkg/errs"
	"venue-booking-web/internal/pkg/localtime"
	"venue-booking-web/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrNotAuthenticated       = errs.New("Log in to book a slot.")
	ErrNotCustomer            = errs.New("Only customers can book slots. Log in as a customer to book.")
	ErrSlotUnavailable        = errs.New("This slot is no longer available.")
	ErrCheckoutNotConfigured  = errs.New("Razorpay is not configured. Set RAZORPAY_KEY.")
	ErrInvalidBookingResponse = errs.New("Invalid booking response: missing order or amount")
)

const MyBookingsPath = "/my-bookings"

// Slot is the slot the customer picked. An empty Status means the caller did not see it.
type Slot struct {
	ID      int64
	VenueID int64
	Status  availability.Status
}

type Input struct {
	AttemptID uuid.UUID
	Token     string
	Identity  *user.Identity
	Slot      Slot
}

type Result struct {
	Booking  domain.Booking
	Redirect string
}

type Flow struct {
	backend Backend
	widget  Widget
	cache   CacheInvalidator
	cfg     config.CheckoutConfig
	loc     *time.Location
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

func NewFlow(
	b Backend,
	w Widget,
	cache CacheInvalidator,
	cfg config.CheckoutConfig,
	loc *time.Location,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Flow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Flow{
		backend: b,
		widget:  w,
		cache:   cache,
		cfg:     cfg,
		loc:     loc,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

func (f *Flow) Book(ctx context.Context, in Input) (*Result, error) {
	res, err := f.book(ctx, in)
	f.metrics.BookingOutcome(outcomeLabel(err))
	if err != nil {
		f.logger.Info("booking attempt failed",
			"attempt_id", in.AttemptID.String(),
			"slot_id", in.Slot.ID,
			"error", err.Error())
		return nil, err
	}
	f.logger.Info("booking confirmed",
		"attempt_id", in.AttemptID.String(),
		"booking_id", res.Booking.ID)
	return res, nil
}

func (f *Flow) book(ctx context.Context, in Input) (*Result, error) {
	if err := f.checkPreconditions(in); err != nil {
		return nil, err
	}
	log := f.logger.With("attempt_id", in.AttemptID.String(), "slot_id", in.Slot.ID)

	log.Debug("reserving slot")
	pending, err := f.backend.CreateBooking(ctx, in.Token, backend.BookingRequest{AvailabilityID: in.Slot.ID})
	if err != nil {
		return nil, err
	}

	orderID := pending.OrderID()
	amount := money.ToMinorUnits(pending.TotalAmount)
	if orderID == "" || amount <= 0 {
		return nil, ErrInvalidBookingResponse
	}
	log.Debug("reservation accepted", "booking_id", pending.ID, "order_id", orderID, "amount", amount)

	if err := f.widget.Load(ctx); err != nil {
		return nil, err
	}
	paid, err := f.widget.Open(ctx, f.checkoutRequest(in, pending, orderID, amount))
	if err != nil {
		return nil, err
	}
	log.Debug("checkout completed", "payment_id", paid.PaymentID)

	confirmed, err := f.backend.ConfirmPayment(ctx, in.Token, backend.PaymentRequest{
		RazorpayOrderID:   paid.OrderID,
		RazorpayPaymentID: paid.PaymentID,
		RazorpaySignature: paid.Signature,
	})
	if err != nil {
		return nil, err
	}

	venueID := in.Slot.VenueID
	if venueID == 0 {
		venueID = pending.VenueID
	}
	f.cache.Invalidate(
		querycache.PublicSlots(venueID),
		querycache.MyBookings(in.Token),
	)
	log.Debug("caches reconciled", "venue_id", venueID)

	if confirmed.ID == 0 {
		confirmed = pending
	}
	return &Result{Booking: confirmed, Redirect: MyBookingsPath}, nil
}

func (f *Flow) checkPreconditions(in Input) error {
	if in.Token == "" || in.Identity == nil {
		return ErrNotAuthenticated
	}
	if in.Identity.Role != user.RoleCustomer {
		return ErrNotCustomer
	}
	if in.Slot.Status != "" && in.Slot.Status != availability.StatusAvailable {
		return ErrSlotUnavailable
	}
	if f.cfg.Key == "" {
		return ErrCheckoutNotConfigured
	}
	return nil
}

func (f *Flow) checkoutRequest(in Input, b domain.Booking, orderID string, amount int64) checkout.Request {
	start := b.Start
	if start.IsZero() {
		start = localtime.Now(f.now(), f.loc)
	}
	return checkout.Request{
		AttemptID:   in.AttemptID,
		Key:         f.cfg.Key,
		OrderID:     orderID,
		Amount:      amount,
		Currency:    f.cfg.Currency,
		Name:        f.cfg.MerchantName,
		Description: fmt.Sprintf("Booking: %s – %s", b.VenueName, start.Display()),
		Prefill: checkout.Prefill{
			Name:  in.Identity.FirstName + " " + in.Identity.LastName,
			Email: in.Identity.Email,
		},
	}
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "confirmed"
	case errs.Is(err, ErrNotAuthenticated), errs.Is(err, ErrNotCustomer),
		errs.Is(err, ErrSlotUnavailable), errs.Is(err, ErrCheckoutNotConfigured):
		return "precondition"
	case errs.Is(err, ErrInvalidBookingResponse):
		return "invalid_response"
	case errs.Is(err, checkout.ErrDismissed):
		return "dismissed"
	case errs.Is(err, checkout.ErrUnavailable):
		return "widget_unavailable"
	case errs.Is(err, backend.ErrRequestFailed):
		return "transport_error"
	default:
		if _, ok := backend.AsAPIError(err); ok {
			return "rejected"
		}
		return "error"
	}
}
