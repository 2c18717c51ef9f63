package booking

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/booking/ports.go -package=bookingmock

import (
	"context"

	domain "venue-booking-web/internal/domain/booking"
	"venue-booking-web/internal/infra/backend"
	"venue-booking-web/internal/infra/checkout"
	"venue-booking-web/internal/infra/querycache"

	"github.com/google/uuid"
)

// Backend is the slice of the backend client the flow needs.
type Backend interface {
	CreateBooking(ctx context.Context, token string, req backend.BookingRequest) (domain.Booking, error)
	ConfirmPayment(ctx context.Context, token string, req backend.PaymentRequest) (domain.Booking, error)
}

// Widget is the payment widget capability.
type Widget interface {
	Load(ctx context.Context) error
	Open(ctx context.Context, req checkout.Request) (checkout.Success, error)
}

type CacheInvalidator interface {
	Invalidate(prefixes ...querycache.Key)
}

// Registrar lets the runner announce attempts to the widget host before the flow starts.
type Registrar interface {
	Expect(id uuid.UUID)
	Release(id uuid.UUID)
}

type Booker interface {
	Book(ctx context.Context, in Input) (*Result, error)
}
