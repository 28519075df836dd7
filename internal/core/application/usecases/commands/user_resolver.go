package commands

import (
	"context"
	"fmt"
	"strings"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/reference"
	"purchasing/internal/core/ports"
	"purchasing/internal/pkg/errs"
)

// UserResolver decides which user a new purchase order belongs to.
type UserResolver interface {
	// Resolve returns the user for requested, which is nil when the request
	// did not name one.
	Resolve(ctx context.Context, users ports.UserRepository, requested *kernel.UUID) (reference.User, error)
}

// ExplicitUserResolver requires every request to name its user.
type ExplicitUserResolver struct{}

func (ExplicitUserResolver) Resolve(
	ctx context.Context,
	users ports.UserRepository,
	requested *kernel.UUID,
) (reference.User, error) {
	if requested == nil {
		return reference.User{}, errs.NewValueIsRequiredError("userId")
	}
	return users.Get(ctx, *requested)
}

// FirstUserResolver falls back to the earliest created user when the
// request names none. This mirrors single-operator installations where
// requests carry no user.
type FirstUserResolver struct{}

func (FirstUserResolver) Resolve(
	ctx context.Context,
	users ports.UserRepository,
	requested *kernel.UUID,
) (reference.User, error) {
	if requested != nil {
		return users.Get(ctx, *requested)
	}
	return users.First(ctx)
}

// User fallback policy names accepted by NewUserResolver.
const (
	UserFallbackFirst = "first"
	UserFallbackNone  = "none"
)

// NewUserResolver returns the resolver for a configured fallback policy.
func NewUserResolver(fallback string) (UserResolver, error) {
	switch strings.ToLower(strings.TrimSpace(fallback)) {
	case UserFallbackFirst, "":
		return FirstUserResolver{}, nil
	case UserFallbackNone:
		return ExplicitUserResolver{}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"userFallback", fmt.Errorf("%q is not one of %s, %s", fallback, UserFallbackFirst, UserFallbackNone),
		)
	}
}
