package commands

//go:generate mockgen -source=owner.go -destination=../../../tests/mock/commands/owner.go -package=commandsmock

import (
	"context"

	"venue-booking-web/internal/domain/availability"
	"venue-booking-web/internal/domain/venue"
	reqdto "venue-booking-web/internal/handler/dto/request"
	"venue-booking-web/internal/infra/backend"
	"venue-booking-web/internal/infra/querycache"
	"venue-booking-web/internal/pkg/errs"
	"venue-booking-web/internal/pkg/localtime"
)

// ErrSlotRange rejects a slot whose end is not after its start.
var ErrSlotRange = errs.New("End time must be after start time.")

type OwnerCommands interface {
	CreateVenue(ctx context.Context, token string, req reqdto.VenueForm) (venue.Venue, error)
	UpdateVenue(ctx context.Context, token string, venueID int64, req reqdto.VenueForm) (venue.Venue, error)
	DeleteVenue(ctx context.Context, token string, venueID int64) error
	CreateSlot(ctx context.Context, token string, venueID int64, req reqdto.SlotForm) (availability.Slot, error)
	DeleteSlot(ctx context.Context, token string, venueID, slotID int64) error
}

type ownerCommandsImpl struct {
	venues VenueWriter
	slots  SlotWriter
	cache  CacheInvalidator
}

func NewOwnerCommands(venues VenueWriter, slots SlotWriter, cache CacheInvalidator) OwnerCommands {
	return &ownerCommandsImpl{
		venues: venues,
		slots:  slots,
		cache:  cache,
	}
}

// Venue lists are cached per token, and an admin may edit another owner's venue,
// so venue mutations drop every owner's list.
func (o *ownerCommandsImpl) CreateVenue(ctx context.Context, token string, req reqdto.VenueForm) (venue.Venue, error) {
	body, err := req.ToBackend()
	if err != nil {
		return venue.Venue{}, err
	}
	created, err := o.venues.CreateVenue(ctx, token, body)
	if err != nil {
		return venue.Venue{}, err
	}
	o.cache.Invalidate(querycache.MyVenuesPrefix, querycache.PublicVenuesPrefix)
	return created, nil
}

func (o *ownerCommandsImpl) UpdateVenue(ctx context.Context, token string, venueID int64, req reqdto.VenueForm) (venue.Venue, error) {
	body, err := req.ToBackend()
	if err != nil {
		return venue.Venue{}, err
	}
	updated, err := o.venues.UpdateVenue(ctx, token, venueID, body)
	if err != nil {
		return venue.Venue{}, err
	}
	o.cache.Invalidate(querycache.MyVenuesPrefix, querycache.PublicVenuesPrefix)
	return updated, nil
}

func (o *ownerCommandsImpl) DeleteVenue(ctx context.Context, token string, venueID int64) error {
	if err := o.venues.DeleteVenue(ctx, token, venueID); err != nil {
		return err
	}
	o.cache.Invalidate(
		querycache.MyVenuesPrefix,
		querycache.PublicVenuesPrefix,
		querycache.VenueSlotsOf(venueID),
		querycache.PublicSlots(venueID),
	)
	return nil
}

// CreateSlot sends times as naive local date-times; form input without seconds gets ":00".
func (o *ownerCommandsImpl) CreateSlot(ctx context.Context, token string, venueID int64, req reqdto.SlotForm) (availability.Slot, error) {
	start, err := localtime.ParseFormInput(req.Start)
	if err != nil {
		return availability.Slot{}, err
	}
	end, err := localtime.ParseFormInput(req.End)
	if err != nil {
		return availability.Slot{}, err
	}
	if !end.After(start.Time) {
		return availability.Slot{}, ErrSlotRange
	}

	created, err := o.slots.CreateSlot(ctx, token, backend.AvailabilityRequest{
		VenueID: venueID,
		Start:   start,
		End:     end,
	})
	if err != nil {
		return availability.Slot{}, err
	}
	o.cache.Invalidate(querycache.VenueSlotsOf(venueID), querycache.PublicSlots(venueID))
	return created, nil
}

func (o *ownerCommandsImpl) DeleteSlot(ctx context.Context, token string, venueID, slotID int64) error {
	if err := o.slots.DeleteSlot(ctx, token, slotID); err != nil {
		return err
	}
	o.cache.Invalidate(querycache.VenueSlotsOf(venueID), querycache.PublicSlots(venueID))
	return nil
}
