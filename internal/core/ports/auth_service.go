package ports

import (
	"context"

	"github.com/teamatlas/people-directory/internal/core/domain"
)

type AuthService interface {
	SignUp(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (string, *domain.User, error)
}

// SignInThrottle limits repeated failed sign-ins per email address.
type SignInThrottle interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
