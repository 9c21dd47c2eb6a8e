// Package store owns the in-memory user collection and its durable mirror.
//
// All mutations follow the same commit protocol: take the write lock, apply
// the change in memory, then rewrite the full collection through the
// repository before returning. The mutex gives the single-writer discipline;
// the snapshot write is the effective commit. There is no rollback: when the
// durable write fails the in-memory state already reflects the mutation and
// the error is surfaced to the caller.
//
// Readers never see the live records. Every accessor returns per-record
// copies made under the lock, so a caller can serialize or inspect a result
// while a concurrent update rewrites the collection.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/teamatlas/people-directory/internal/core/domain"
	"github.com/teamatlas/people-directory/internal/core/ports"
)

type Store struct {
	mu    sync.RWMutex
	users []*domain.User
	repo  ports.UserRepository
}

func New(repo ports.UserRepository) *Store {
	return &Store{repo: repo}
}

// Load reads the full collection from the durable mirror. Called once at
// process start, before the store is shared.
func (s *Store) Load(ctx context.Context) error {
	users, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("store: load users: %w", err)
	}
	owned := make([]*domain.User, len(users))
	for i, u := range users {
		owned[i] = clone(u)
	}
	s.mu.Lock()
	s.users = owned
	s.mu.Unlock()
	return nil
}

// List returns the collection in insertion order. Each returned record is a
// copy taken under the lock; mutations go through Append/Update.
func (s *Store) List() []*domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.User, len(s.users))
	for i, u := range s.users {
		out[i] = clone(u)
	}
	return out
}

// ByID returns a copy of the record with the given id.
func (s *Store) ByID(id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return clone(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// ByEmail returns a copy of the record with the given email.
func (s *Store) ByEmail(email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return clone(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Append adds a new record and commits. Email uniqueness is checked under the
// same lock so concurrent sign-ups cannot race past each other. The store
// keeps its own copy; the caller's pointer stays private.
func (s *Store) Append(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.ErrUserExists
		}
	}

	s.users = append(s.users, clone(user))
	if err := s.repo.ReplaceAll(ctx, s.users); err != nil {
		return fmt.Errorf("store: persist users: %w", err)
	}
	return nil
}

// Update locates the record by id, applies mutate to it with the full
// collection in view (manager resolution searches all records, including the
// one being updated), and commits. Returns a copy of the mutated record,
// taken before the lock is released.
func (s *Store) Update(ctx context.Context, id string, mutate func(u *domain.User, all []*domain.User)) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var target *domain.User
	for _, u := range s.users {
		if u.ID == id {
			target = u
			break
		}
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}

	mutate(target, s.users)

	if err := s.repo.ReplaceAll(ctx, s.users); err != nil {
		return nil, fmt.Errorf("store: persist users: %w", err)
	}
	return clone(target), nil
}

// clone copies a record. The visa list is duplicated; birth-date pointers are
// shared, which is safe because updates swap those pointers rather than write
// through them.
func clone(u *domain.User) *domain.User {
	c := *u
	if u.Visa != nil {
		c.Visa = make([]string, len(u.Visa))
		copy(c.Visa, u.Visa)
	}
	return &c
}
