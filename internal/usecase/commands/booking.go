package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"

	"venue-booking-web/internal/infra/querycache"
)

type BookingCommands interface {
	Cancel(ctx context.Context, token string, bookingID int64) error
}

type bookingCommandsImpl struct {
	writer BookingWriter
	cache  CacheInvalidator
}

func NewBookingCommands(writer BookingWriter, cache CacheInvalidator) BookingCommands {
	return &bookingCommandsImpl{
		writer: writer,
		cache:  cache,
	}
}

// Cancel frees the slot server-side, so every public slot list and every owner's
// booking list may be stale afterwards.
func (b *bookingCommandsImpl) Cancel(ctx context.Context, token string, bookingID int64) error {
	if err := b.writer.CancelBooking(ctx, token, bookingID); err != nil {
		return err
	}
	b.cache.Invalidate(
		querycache.MyBookings(token),
		querycache.PublicSlotsPrefix,
		querycache.VenueBookingsPrefix,
	)
	return nil
}
