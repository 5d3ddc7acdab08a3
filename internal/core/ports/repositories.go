package ports

import (
	"context"

	"github.com/goquantum/booking/internal/core/domain"
)

// Collection keys understood by every CollectionStore.
const (
	CollectionTrips = "trips"
	CollectionUsers = "users"
)

// CollectionStore persists whole collections as opaque blobs under a
// key. Every mutation in the core is read-full, mutate-one,
// write-full; there is no record-level access and no locking, so
// concurrent writers are last-writer-wins.
type CollectionStore interface {
	// Load returns the stored blob, or domain.ErrNotFound if the key
	// has never been written.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// TripRepository persists the trips collection.
type TripRepository interface {
	List(ctx context.Context) ([]domain.Trip, error)
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	// Put inserts the trip or replaces the stored record with the same id.
	Put(ctx context.Context, trip *domain.Trip) error
}

// UserRepository persists the users collection.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, user *domain.User) error
}
