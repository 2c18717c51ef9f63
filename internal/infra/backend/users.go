package backend

import (
	"context"
	"fmt"
	"net/http"

	"venue-booking-web/internal/domain/user"
)

// Admin and self-service rules are enforced by the backend.

func (c *Client) ListUsers(ctx context.Context, token string, f UserFilter) ([]user.Account, error) {
	return do[[]user.Account](ctx, c, call{
		method: http.MethodGet, route: "/api/users", path: "/api/users", token: token,
		query: map[string]string{"searchTerm": f.SearchTerm, "role": string(f.Role)},
	})
}

func (c *Client) GetUser(ctx context.Context, token string, id int64) (user.Account, error) {
	return do[user.Account](ctx, c, call{
		method: http.MethodGet, route: "/api/users/{id}", path: fmt.Sprintf("/api/users/%d", id), token: token,
	})
}

func (c *Client) CreateUser(ctx context.Context, token string, req UserRequest) (user.Account, error) {
	return do[user.Account](ctx, c, call{
		method: http.MethodPost, route: "/api/users", path: "/api/users", token: token, body: req,
	})
}

func (c *Client) UpdateUser(ctx context.Context, token string, id int64, req UserRequest) (user.Account, error) {
	return do[user.Account](ctx, c, call{
		method: http.MethodPut, route: "/api/users/{id}", path: fmt.Sprintf("/api/users/%d", id), token: token, body: req,
	})
}

func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	return exec(ctx, c, call{
		method: http.MethodDelete, route: "/api/users/{id}", path: fmt.Sprintf("/api/users/%d", id), token: token,
	})
}
