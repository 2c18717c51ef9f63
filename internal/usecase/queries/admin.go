package queries

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/queries/admin.go -package=queriesmock

import (
	"context"

	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/infra/backend"
	"venue-booking-web/internal/infra/querycache"
)

type AdminQueries interface {
	ListUsers(ctx context.Context, token string, f backend.UserFilter) ([]user.Account, error)
	GetUser(ctx context.Context, token string, id int64) (user.Account, error)
}

type adminQueriesImpl struct {
	readStore UserReadStore
	cache     *querycache.Cache
}

func NewAdminQueries(readStore UserReadStore, cache *querycache.Cache) AdminQueries {
	return &adminQueriesImpl{
		readStore: readStore,
		cache:     cache,
	}
}

func (q *adminQueriesImpl) ListUsers(ctx context.Context, token string, f backend.UserFilter) ([]user.Account, error) {
	return querycache.Get(ctx, q.cache, querycache.Users(token, f.SearchTerm, string(f.Role)),
		func(ctx context.Context) ([]user.Account, error) {
			return q.readStore.ListUsers(ctx, token, f)
		})
}

func (q *adminQueriesImpl) GetUser(ctx context.Context, token string, id int64) (user.Account, error) {
	return q.readStore.GetUser(ctx, token, id)
}
