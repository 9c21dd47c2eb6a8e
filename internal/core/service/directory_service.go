package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/teamatlas/people-directory/internal/api/metrics"
	"github.com/teamatlas/people-directory/internal/core/domain"
	"github.com/teamatlas/people-directory/internal/core/store"
)

// DirectoryService implements listing, lookup, and the two update paths over
// the shared record store.
type DirectoryService struct {
	store *store.Store
	newID func() string
}

// NewDirectoryService builds the service. newID generates identifiers for
// synthesized manager references; pass nil to use random UUIDs.
func NewDirectoryService(st *store.Store, newID func() string) *DirectoryService {
	if newID == nil {
		newID = uuid.NewString
	}
	return &DirectoryService{store: st, newID: newID}
}

// List returns the users matching q, in insertion order. With an empty query
// the whole collection is returned.
func (s *DirectoryService) List(_ context.Context, q domain.Query) ([]*domain.User, error) {
	return domain.FilterUsers(s.store.List(), q), nil
}

func (s *DirectoryService) Get(_ context.Context, id string) (*domain.User, error) {
	return s.store.ByID(id)
}

// UpdateRole sets the role on the dedicated path, where the role enum is
// enforced. An invalid role leaves the record untouched.
func (s *DirectoryService) UpdateRole(ctx context.Context, id, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.store.Update(ctx, id, func(u *domain.User, _ []*domain.User) {
		u.Role = role
	})
	if err != nil {
		return nil, err
	}

	metrics.UserUpdatesTotal.WithLabelValues("role").Inc()
	return user, nil
}

// Update applies a partial update and commits. Manager resolution runs
// against the full collection inside the store's write lock.
func (s *DirectoryService) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	user, err := s.store.Update(ctx, id, func(u *domain.User, all []*domain.User) {
		domain.ApplyPatch(u, patch, all, s.newID)
	})
	if err != nil {
		return nil, err
	}

	metrics.UserUpdatesTotal.WithLabelValues("profile").Inc()
	if patch.Manager != nil {
		metrics.ManagerResolutionsTotal.WithLabelValues(s.resolutionOutcome(user.Manager)).Inc()
	}
	return user, nil
}

func (s *DirectoryService) resolutionOutcome(ref domain.ManagerRef) string {
	if ref.ID == "" {
		return "cleared"
	}
	if _, err := s.store.ByID(ref.ID); err == nil {
		return "matched"
	}
	return "placeholder"
}
