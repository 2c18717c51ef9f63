package queries

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/queries/ports.go -package=queriesmock

import (
	"context"

	"venue-booking-web/internal/domain/availability"
	"venue-booking-web/internal/domain/booking"
	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/domain/venue"
	"venue-booking-web/internal/infra/backend"
)

type VenueReadStore interface {
	ListPublicVenues(ctx context.Context, f backend.VenueFilter) ([]venue.Venue, error)
	GetVenue(ctx context.Context, token string, id int64) (venue.Venue, error)
	ListMyVenues(ctx context.Context, token string) ([]venue.Venue, error)
}

type SlotReadStore interface {
	ListPublicSlots(ctx context.Context, venueID int64) ([]availability.Slot, error)
	ListVenueSlots(ctx context.Context, token string, venueID int64) ([]availability.Slot, error)
}

type BookingReadStore interface {
	ListMyBookings(ctx context.Context, token string) ([]booking.Booking, error)
	ListVenueBookings(ctx context.Context, token string, venueID int64) ([]booking.Booking, error)
}

type UserReadStore interface {
	ListUsers(ctx context.Context, token string, f backend.UserFilter) ([]user.Account, error)
	GetUser(ctx context.Context, token string, id int64) (user.Account, error)
}
