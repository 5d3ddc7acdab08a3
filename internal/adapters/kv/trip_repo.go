// Package kv implements the core repositories over any CollectionStore.
// Collections are stored whole as JSON arrays; every write re-persists
// the entire collection, which keeps each mutation atomic from the
// caller's side at the cost of last-writer-wins between processes.
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

// TripRepo implements ports.TripRepository.
type TripRepo struct {
	store ports.CollectionStore
}

// NewTripRepo creates a new TripRepo.
func NewTripRepo(store ports.CollectionStore) *TripRepo {
	return &TripRepo{store: store}
}

// List returns the whole trips collection. A missing collection is
// empty; a collection that fails to parse is treated as empty after a
// warning, so corrupt data degrades instead of wedging the core.
func (r *TripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	data, err := r.store.Load(ctx, ports.CollectionTrips)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}

	var trips []domain.Trip
	if err := json.Unmarshal(data, &trips); err != nil {
		slog.Warn("trips collection is malformed, starting empty", "error", err)
		return nil, nil
	}
	return trips, nil
}

// GetByID returns one trip.
func (r *TripRepo) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	trips, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range trips {
		if trips[i].ID == id {
			return &trips[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Put inserts or replaces one trip and persists the full collection.
func (r *TripRepo) Put(ctx context.Context, trip *domain.Trip) error {
	trips, err := r.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range trips {
		if trips[i].ID == trip.ID {
			trips[i] = *trip
			replaced = true
			break
		}
	}
	if !replaced {
		trips = append(trips, *trip)
	}

	data, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("marshal trips: %w", err)
	}
	return r.store.Save(ctx, ports.CollectionTrips, data)
}
