package backend

import (
	"context"
	"net/http"

	"venue-booking-web/internal/domain/user"
)

func (c *Client) Register(ctx context.Context, req UserRequest) (user.Account, error) {
	return do[user.Account](ctx, c, call{
		method: http.MethodPost, route: "/api/auth/register", path: "/api/auth/register", body: req,
	})
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (user.LoginResponse, error) {
	return do[user.LoginResponse](ctx, c, call{
		method: http.MethodPost, route: "/api/auth/login", path: "/api/auth/login", body: req,
	})
}
