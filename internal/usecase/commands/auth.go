package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"

	"venue-booking-web/internal/domain/user"
	reqdto "venue-booking-web/internal/handler/dto/request"
	"venue-booking-web/internal/infra/backend"
	"venue-booking-web/internal/pkg/errs"
)

var ErrInvalidLoginResponse = errs.New("Login response is missing the token or user")

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginForm) (user.LoginResponse, error)
	Register(ctx context.Context, req reqdto.RegisterForm) (user.Account, error)
}

type authCommandsImpl struct {
	gateway AuthGateway
	logger  *slog.Logger
}

func NewAuthCommands(gateway AuthGateway, logger *slog.Logger) AuthCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &authCommandsImpl{
		gateway: gateway,
		logger:  logger,
	}
}

// Login only talks to the backend; the handler owns the session update.
func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginForm) (user.LoginResponse, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return user.LoginResponse{}, err
	}

	resp, err := a.gateway.Login(ctx, backend.LoginRequest{
		Email:    credentials.Email(),
		Password: credentials.Password(),
	})
	if err != nil {
		return user.LoginResponse{}, err
	}
	if resp.Token == "" || resp.UserID == 0 || !resp.Role.IsValid() {
		a.logger.Warn("backend login response incomplete", "email", credentials.Email())
		return user.LoginResponse{}, ErrInvalidLoginResponse
	}
	return resp, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterForm) (user.Account, error) {
	body, err := req.ToBackend()
	if err != nil {
		return user.Account{}, err
	}
	account, err := a.gateway.Register(ctx, body)
	if err != nil {
		return user.Account{}, err
	}
	a.logger.Info("user registered", "email", body.Email, "role", body.Role.String())
	return account, nil
}
