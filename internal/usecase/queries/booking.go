package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"

	"venue-booking-web/internal/domain/booking"
	"venue-booking-web/internal/infra/querycache"
)

type BookingQueries interface {
	ListMine(ctx context.Context, token string) ([]booking.Booking, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	cache     *querycache.Cache
}

func NewBookingQueries(readStore BookingReadStore, cache *querycache.Cache) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
		cache:     cache,
	}
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, token string) ([]booking.Booking, error) {
	return querycache.Get(ctx, q.cache, querycache.MyBookings(token),
		func(ctx context.Context) ([]booking.Booking, error) {
			return q.readStore.ListMyBookings(ctx, token)
		})
}
