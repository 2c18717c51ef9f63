package queries

//go:generate mockgen -source=venue.go -destination=../../../tests/mock/queries/venue.go -package=queriesmock

import (
	"context"

	"venue-booking-web/internal/domain/availability"
	"venue-booking-web/internal/domain/venue"
	"venue-booking-web/internal/infra/backend"
	"venue-booking-web/internal/infra/querycache"
)

type VenueQueries interface {
	ListPublic(ctx context.Context, f backend.VenueFilter) ([]venue.Venue, error)
	Get(ctx context.Context, token string, id int64) (venue.Venue, error)
	ListAvailableSlots(ctx context.Context, venueID int64) ([]availability.Slot, error)
}

type venueQueriesImpl struct {
	venues VenueReadStore
	slots  SlotReadStore
	cache  *querycache.Cache
}

func NewVenueQueries(venues VenueReadStore, slots SlotReadStore, cache *querycache.Cache) VenueQueries {
	return &venueQueriesImpl{
		venues: venues,
		slots:  slots,
		cache:  cache,
	}
}

func (q *venueQueriesImpl) ListPublic(ctx context.Context, f backend.VenueFilter) ([]venue.Venue, error) {
	return querycache.Get(ctx, q.cache, querycache.PublicVenues(f.City, f.SearchTerm),
		func(ctx context.Context) ([]venue.Venue, error) {
			return q.venues.ListPublicVenues(ctx, f)
		})
}

// Get is not cached: the detail page is the one place a fresh read matters before booking.
func (q *venueQueriesImpl) Get(ctx context.Context, token string, id int64) (venue.Venue, error) {
	return q.venues.GetVenue(ctx, token, id)
}

// ListAvailableSlots returns only AVAILABLE slots even if the backend sends others.
func (q *venueQueriesImpl) ListAvailableSlots(ctx context.Context, venueID int64) ([]availability.Slot, error) {
	slots, err := querycache.Get(ctx, q.cache, querycache.PublicSlots(venueID),
		func(ctx context.Context) ([]availability.Slot, error) {
			return q.slots.ListPublicSlots(ctx, venueID)
		})
	if err != nil {
		return nil, err
	}
	return availability.FilterAvailable(slots), nil
}
