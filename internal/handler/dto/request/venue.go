package request

import (
	"venue-booking-web/internal/domain/venue"
	"venue-booking-web/internal/infra/backend"
	"venue-booking-web/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type VenueForm struct {
	Name         string  `form:"name" binding:"required"`
	Description  string  `form:"description" binding:"required"`
	Address      string  `form:"address" binding:"required"`
	City         string  `form:"city" binding:"required"`
	State        string  `form:"state" binding:"required"`
	ZipCode      string  `form:"zipCode" binding:"required"`
	PricePerHour float64 `form:"pricePerHour"`
	Capacity     int     `form:"capacity"`
}

// NewVenueForm prefills the edit form from an existing venue.
func NewVenueForm(v venue.Venue) (VenueForm, error) {
	var f VenueForm
	if err := copier.Copy(&f, &v); err != nil {
		return VenueForm{}, errs.Wrap(err, "failed to prefill venue form")
	}
	return f, nil
}

func (r VenueForm) ToBackend() (backend.VenueRequest, error) {
	var req backend.VenueRequest
	if err := copier.Copy(&req, &r); err != nil {
		return backend.VenueRequest{}, errs.Wrap(err, "failed to map venue form")
	}
	return req, nil
}

// SlotForm carries datetime-local inputs, "YYYY-MM-DDTHH:mm" with optional seconds.
type SlotForm struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}
