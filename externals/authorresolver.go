package externals

import (
	"context"

	"wifispots-server/model"
)

// AuthorResolver maps an authenticated request identity to the display name
// stored on new reviews. Verifying the identity itself happens upstream of
// this service.
type AuthorResolver interface {
	Resolve(ctx context.Context, identity string) (string, error)
}

type userStore interface {
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}

// UserAuthorResolver resolves an identity through the user store. The
// identity is the pre-verified email carried on the request.
type UserAuthorResolver struct {
	users userStore
}

func NewUserAuthorResolver(users userStore) *UserAuthorResolver {
	return &UserAuthorResolver{users: users}
}

func (resolver *UserAuthorResolver) Resolve(ctx context.Context, identity string) (string, error) {
	if identity == "" {
		return "", model.ErrIdentityNotFound
	}

	user, err := resolver.users.GetUserByEmail(ctx, identity)
	if err != nil {
		return "", err
	}

	return user.Name, nil
}
