package commands

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/commands/admin.go -package=commandsmock

import (
	"context"

	"venue-booking-web/internal/domain/user"
	reqdto "venue-booking-web/internal/handler/dto/request"
	"venue-booking-web/internal/infra/querycache"
)

type AdminCommands interface {
	CreateUser(ctx context.Context, token string, req reqdto.UserForm) (user.Account, error)
	UpdateUser(ctx context.Context, token string, id int64, req reqdto.UserForm) (user.Account, error)
	DeleteUser(ctx context.Context, token string, id int64) error
}

type adminCommandsImpl struct {
	writer UserWriter
	cache  CacheInvalidator
}

func NewAdminCommands(writer UserWriter, cache CacheInvalidator) AdminCommands {
	return &adminCommandsImpl{
		writer: writer,
		cache:  cache,
	}
}

func (a *adminCommandsImpl) CreateUser(ctx context.Context, token string, req reqdto.UserForm) (user.Account, error) {
	body, err := req.ToBackend()
	if err != nil {
		return user.Account{}, err
	}
	created, err := a.writer.CreateUser(ctx, token, body)
	if err != nil {
		return user.Account{}, err
	}
	a.cache.Invalidate(querycache.UsersPrefix)
	return created, nil
}

func (a *adminCommandsImpl) UpdateUser(ctx context.Context, token string, id int64, req reqdto.UserForm) (user.Account, error) {
	body, err := req.ToBackend()
	if err != nil {
		return user.Account{}, err
	}
	updated, err := a.writer.UpdateUser(ctx, token, id, body)
	if err != nil {
		return user.Account{}, err
	}
	a.cache.Invalidate(querycache.UsersPrefix)
	return updated, nil
}

func (a *adminCommandsImpl) DeleteUser(ctx context.Context, token string, id int64) error {
	if err := a.writer.DeleteUser(ctx, token, id); err != nil {
		return err
	}
	a.cache.Invalidate(querycache.UsersPrefix)
	return nil
}
