package queries

//go:generate mockgen -source=profile.go -destination=../../../tests/mock/queries/profile.go -package=queriesmock

import (
	"context"
	"log/slog"

	"venue-booking-web/internal/domain/user"
)

// ProfileView is what the profile page shows. Loaded is false when Account
// was filled from the session identity because the backend read failed.
type ProfileView struct {
	Account user.Account
	Loaded  bool
}

type ProfileQueries interface {
	Get(ctx context.Context, token string, identity user.Identity) (ProfileView, error)
}

type profileQueriesImpl struct {
	readStore UserReadStore
	logger    *slog.Logger
}

func NewProfileQueries(readStore UserReadStore, logger *slog.Logger) ProfileQueries {
	if logger == nil {
		logger = slog.Default()
	}
	return &profileQueriesImpl{
		readStore: readStore,
		logger:    logger,
	}
}

// Get always returns a displayable view; err is the backend failure, if any.
func (q *profileQueriesImpl) Get(ctx context.Context, token string, identity user.Identity) (ProfileView, error) {
	account, err := q.readStore.GetUser(ctx, token, identity.ID)
	if err != nil {
		q.logger.Warn("profile read failed, showing session identity", "user_id", identity.ID, "error", err.Error())
		return ProfileView{
			Account: user.Account{
				ID:        identity.ID,
				Email:     identity.Email,
				FirstName: identity.FirstName,
				LastName:  identity.LastName,
				Role:      identity.Role,
			},
		}, err
	}
	return ProfileView{Account: account, Loaded: true}, nil
}
