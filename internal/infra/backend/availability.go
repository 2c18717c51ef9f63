package backend

import (
	"context"
	"fmt"
	"net/http"

	"venue-booking-web/internal/domain/availability"
)

func (c *Client) ListPublicSlots(ctx context.Context, venueID int64) ([]availability.Slot, error) {
	return do[[]availability.Slot](ctx, c, call{
		method: http.MethodGet, route: "/api/availabilities/public/venue/{id}",
		path: fmt.Sprintf("/api/availabilities/public/venue/%d", venueID),
	})
}

// ListVenueSlots returns every slot of the venue regardless of status (owner view).
func (c *Client) ListVenueSlots(ctx context.Context, token string, venueID int64) ([]availability.Slot, error) {
	return do[[]availability.Slot](ctx, c, call{
		method: http.MethodGet, route: "/api/availabilities/venue/{id}",
		path: fmt.Sprintf("/api/availabilities/venue/%d", venueID), token: token,
	})
}

func (c *Client) GetSlot(ctx context.Context, token string, id int64) (availability.Slot, error) {
	return do[availability.Slot](ctx, c, call{
		method: http.MethodGet, route: "/api/availabilities/{id}",
		path: fmt.Sprintf("/api/availabilities/%d", id), token: token,
	})
}

func (c *Client) CreateSlot(ctx context.Context, token string, req AvailabilityRequest) (availability.Slot, error) {
	return do[availability.Slot](ctx, c, call{
		method: http.MethodPost, route: "/api/availabilities", path: "/api/availabilities", token: token, body: req,
	})
}

func (c *Client) DeleteSlot(ctx context.Context, token string, id int64) error {
	return exec(ctx, c, call{
		method: http.MethodDelete, route: "/api/availabilities/{id}",
		path: fmt.Sprintf("/api/availabilities/%d", id), token: token,
	})
}
