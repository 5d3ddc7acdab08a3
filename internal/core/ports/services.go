package ports

import (
	"context"

	"github.com/goquantum/booking/internal/core/domain"
)

// EventPublisher publishes trip lifecycle events to a message broker.
// Publishing is best-effort notification; nothing in the core consumes
// the events back.
type EventPublisher interface {
	PublishTripEvent(ctx context.Context, event *domain.TripEvent) error
}
