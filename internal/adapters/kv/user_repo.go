package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goquantum/booking/internal/core/domain"
	"github.com/goquantum/booking/internal/core/ports"
)

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	store ports.CollectionStore
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(store ports.CollectionStore) *UserRepo {
	return &UserRepo{store: store}
}

// List returns the whole users collection, empty when missing or
// malformed.
func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	data, err := r.store.Load(ctx, ports.CollectionUsers)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		slog.Warn("users collection is malformed, starting empty", "error", err)
		return nil, nil
	}
	return users, nil
}

// GetByID returns one user.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetByEmail returns the user registered under an email address.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Put inserts or replaces one user and persists the full collection.
func (r *UserRepo) Put(ctx context.Context, user *domain.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, *user)
	}

	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	return r.store.Save(ctx, ports.CollectionUsers, data)
}
