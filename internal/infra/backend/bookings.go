package backend

import (
	"context"
	"fmt"
	"net/http"

	"venue-booking-web/internal/domain/booking"
)

func (c *Client) CreateBooking(ctx context.Context, token string, req BookingRequest) (booking.Booking, error) {
	return do[booking.Booking](ctx, c, call{
		method: http.MethodPost, route: "/api/bookings", path: "/api/bookings", token: token, body: req,
	})
}

// ConfirmPayment asks the backend to verify the checkout result and settle the booking.
func (c *Client) ConfirmPayment(ctx context.Context, token string, req PaymentRequest) (booking.Booking, error) {
	return do[booking.Booking](ctx, c, call{
		method: http.MethodPost, route: "/api/bookings/confirm-payment", path: "/api/bookings/confirm-payment", token: token, body: req,
	})
}

func (c *Client) CancelBooking(ctx context.Context, token string, id int64) error {
	return exec(ctx, c, call{
		method: http.MethodDelete, route: "/api/bookings/{id}", path: fmt.Sprintf("/api/bookings/%d", id), token: token,
	})
}

func (c *Client) ListMyBookings(ctx context.Context, token string) ([]booking.Booking, error) {
	return do[[]booking.Booking](ctx, c, call{
		method: http.MethodGet, route: "/api/bookings/my-bookings", path: "/api/bookings/my-bookings", token: token,
	})
}

func (c *Client) ListVenueBookings(ctx context.Context, token string, venueID int64) ([]booking.Booking, error) {
	return do[[]booking.Booking](ctx, c, call{
		method: http.MethodGet, route: "/api/bookings/venue/{id}", path: fmt.Sprintf("/api/bookings/venue/%d", venueID), token: token,
	})
}

func (c *Client) GetBooking(ctx context.Context, token string, id int64) (booking.Booking, error) {
	return do[booking.Booking](ctx, c, call{
		method: http.MethodGet, route: "/api/bookings/{id}", path: fmt.Sprintf("/api/bookings/%d", id), token: token,
	})
}
