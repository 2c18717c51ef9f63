package booking

import "venue-booking-web/internal/pkg/localtime"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

type Booking struct {
	ID              int64              `json:"id"`
	CustomerID      int64              `json:"customerId"`
	CustomerName    string             `json:"customerName"`
	VenueID         int64              `json:"venueId"`
	VenueName       string             `json:"venueName"`
	AvailabilityID  int64              `json:"availabilityId"`
	Start           localtime.DateTime `json:"startTime"`
	End             localtime.DateTime `json:"endTime"`
	TotalAmount     float64            `json:"totalAmount"`
	Status          Status             `json:"status"`
	RazorpayOrderID *string            `json:"razorpayOrderId,omitempty"`
	PaymentStatus   *string            `json:"paymentStatus,omitempty"`
	CreatedAt       localtime.DateTime `json:"createdAt"`
	UpdatedAt       localtime.DateTime `json:"updatedAt"`
}

// Cancellable reports whether the cancel action is offered for b.
func (b Booking) Cancellable() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// OrderID returns the external order id, or "" when the backend sent none.
func (b Booking) OrderID() string {
	if b.RazorpayOrderID == nil {
		return ""
	}
	return *b.RazorpayOrderID
}

// Tone classifies the status for badge rendering.
func (b Booking) Tone() string {
	switch b.Status {
	case StatusConfirmed, StatusCompleted:
		return "ok"
	case StatusPending:
		return "warn"
	default:
		return "bad"
	}
}
