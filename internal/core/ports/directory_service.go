package ports

import (
	"context"

	"github.com/teamatlas/people-directory/internal/core/domain"
)

type DirectoryService interface {
	List(ctx context.Context, q domain.Query) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
}
