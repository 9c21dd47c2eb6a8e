package ports

import (
	"context"

	"github.com/teamatlas/people-directory/internal/core/domain"
)

// UserRepository is the durable mirror of the in-memory user collection: the
// full set is read once at startup and rewritten as a whole after every
// mutation. The store treats the snapshot write as atomic-enough; there is no
// partial-write recovery.
type UserRepository interface {
	LoadAll(ctx context.Context) ([]*domain.User, error)
	ReplaceAll(ctx context.Context, users []*domain.User) error
}
