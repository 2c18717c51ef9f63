// Package checkout hosts the payment widget: the flow hands it a Request and
// waits while the browser runs the Razorpay checkout and reports back.
package checkout

import (
	"venue-booking-web/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnavailable    = errs.New("Failed to load Razorpay script")
	ErrDismissed      = errs.New("Payment cancelled")
	ErrUnknownAttempt = errs.New("unknown checkout attempt")
)

type Prefill struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Request carries the options the browser passes to the widget.
type Request struct {
	AttemptID   uuid.UUID `json:"-"`
	Key         string    `json:"key"`
	OrderID     string    `json:"order_id"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Prefill     Prefill   `json:"prefill"`
}

// Success holds the widget's opaque identifiers, forwarded to the backend as-is.
type Success struct {
	OrderID   string `json:"razorpay_order_id" form:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id" form:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature" form:"razorpay_signature"`
}
