package backend

import (
	"context"
	"fmt"
	"net/http"

	"venue-booking-web/internal/domain/venue"
)

func (c *Client) ListPublicVenues(ctx context.Context, f VenueFilter) ([]venue.Venue, error) {
	return do[[]venue.Venue](ctx, c, call{
		method: http.MethodGet, route: "/api/venues/public/all", path: "/api/venues/public/all",
		query: map[string]string{"city": f.City, "searchTerm": f.SearchTerm},
	})
}

// GetVenue sends token when present; anonymous reads are allowed.
func (c *Client) GetVenue(ctx context.Context, token string, id int64) (venue.Venue, error) {
	return do[venue.Venue](ctx, c, call{
		method: http.MethodGet, route: "/api/venues/{id}", path: fmt.Sprintf("/api/venues/%d", id), token: token,
	})
}

func (c *Client) ListMyVenues(ctx context.Context, token string) ([]venue.Venue, error) {
	return do[[]venue.Venue](ctx, c, call{
		method: http.MethodGet, route: "/api/venues/my-venues", path: "/api/venues/my-venues", token: token,
	})
}

func (c *Client) CreateVenue(ctx context.Context, token string, req VenueRequest) (venue.Venue, error) {
	return do[venue.Venue](ctx, c, call{
		method: http.MethodPost, route: "/api/venues", path: "/api/venues", token: token, body: req,
	})
}

func (c *Client) UpdateVenue(ctx context.Context, token string, id int64, req VenueRequest) (venue.Venue, error) {
	return do[venue.Venue](ctx, c, call{
		method: http.MethodPut, route: "/api/venues/{id}", path: fmt.Sprintf("/api/venues/%d", id), token: token, body: req,
	})
}

func (c *Client) DeleteVenue(ctx context.Context, token string, id int64) error {
	return exec(ctx, c, call{
		method: http.MethodDelete, route: "/api/venues/{id}", path: fmt.Sprintf("/api/venues/%d", id), token: token,
	})
}
