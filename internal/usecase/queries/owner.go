package queries

//go:generate mockgen -source=owner.go -destination=../../../tests/mock/queries/owner.go -package=queriesmock

import (
	"context"

	"venue-booking-web/internal/domain/availability"
	"venue-booking-web/internal/domain/booking"
	"venue-booking-web/internal/domain/venue"
	"venue-booking-web/internal/infra/querycache"
)

// OwnerQueries backs the owner dashboard. Ownership is enforced by the backend,
// so every cached read is scoped to the caller's token.
type OwnerQueries interface {
	ListMyVenues(ctx context.Context, token string) ([]venue.Venue, error)
	GetVenue(ctx context.Context, token string, id int64) (venue.Venue, error)
	ListSlots(ctx context.Context, token string, venueID int64) ([]availability.Slot, error)
	ListVenueBookings(ctx context.Context, token string, venueID int64) ([]booking.Booking, error)
}

type ownerQueriesImpl struct {
	venues   VenueReadStore
	slots    SlotReadStore
	bookings BookingReadStore
	cache    *querycache.Cache
}

func NewOwnerQueries(venues VenueReadStore, slots SlotReadStore, bookings BookingReadStore, cache *querycache.Cache) OwnerQueries {
	return &ownerQueriesImpl{
		venues:   venues,
		slots:    slots,
		bookings: bookings,
		cache:    cache,
	}
}

func (q *ownerQueriesImpl) ListMyVenues(ctx context.Context, token string) ([]venue.Venue, error) {
	return querycache.Get(ctx, q.cache, querycache.MyVenues(token),
		func(ctx context.Context) ([]venue.Venue, error) {
			return q.venues.ListMyVenues(ctx, token)
		})
}

func (q *ownerQueriesImpl) GetVenue(ctx context.Context, token string, id int64) (venue.Venue, error) {
	return q.venues.GetVenue(ctx, token, id)
}

func (q *ownerQueriesImpl) ListSlots(ctx context.Context, token string, venueID int64) ([]availability.Slot, error) {
	return querycache.Get(ctx, q.cache, querycache.VenueSlots(token, venueID),
		func(ctx context.Context) ([]availability.Slot, error) {
			return q.slots.ListVenueSlots(ctx, token, venueID)
		})
}

func (q *ownerQueriesImpl) ListVenueBookings(ctx context.Context, token string, venueID int64) ([]booking.Booking, error) {
	return querycache.Get(ctx, q.cache, querycache.VenueBookings(token, venueID),
		func(ctx context.Context) ([]booking.Booking, error) {
			return q.bookings.ListVenueBookings(ctx, token, venueID)
		})
}
