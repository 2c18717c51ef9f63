package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"

	"venue-booking-web/internal/domain/availability"
	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/domain/venue"
	"venue-booking-web/internal/infra/backend"
	"venue-booking-web/internal/infra/querycache"
)

type AuthGateway interface {
	Login(ctx context.Context, req backend.LoginRequest) (user.LoginResponse, error)
	Register(ctx context.Context, req backend.UserRequest) (user.Account, error)
}

type BookingWriter interface {
	CancelBooking(ctx context.Context, token string, id int64) error
}

type VenueWriter interface {
	CreateVenue(ctx context.Context, token string, req backend.VenueRequest) (venue.Venue, error)
	UpdateVenue(ctx context.Context, token string, id int64, req backend.VenueRequest) (venue.Venue, error)
	DeleteVenue(ctx context.Context, token string, id int64) error
}

type SlotWriter interface {
	CreateSlot(ctx context.Context, token string, req backend.AvailabilityRequest) (availability.Slot, error)
	DeleteSlot(ctx context.Context, token string, id int64) error
}

type UserWriter interface {
	CreateUser(ctx context.Context, token string, req backend.UserRequest) (user.Account, error)
	UpdateUser(ctx context.Context, token string, id int64, req backend.UserRequest) (user.Account, error)
	DeleteUser(ctx context.Context, token string, id int64) error
}

type CacheInvalidator interface {
	Invalidate(prefixes ...querycache.Key)
}
