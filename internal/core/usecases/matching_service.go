package usecases

import (
	"context"
	"fmt"

	"github.com/goquantum/booking/internal/core/domain"
	"github.com/goquantum/booking/internal/core/ports"
)

// MatchingService finds drivers able to serve a trip: active accounts
// whose effective route for the trip date covers the requested segment.
type MatchingService struct {
	users   ports.UserRepository
	catalog *domain.Catalog
}

// NewMatchingService creates a new MatchingService.
func NewMatchingService(users ports.UserRepository, catalog *domain.Catalog) *MatchingService {
	return &MatchingService{users: users, catalog: catalog}
}

// AvailableDrivers resolves every active driver's effective route for
// the trip's date and keeps the ones whose declared segment is
// corridor-compatible with the trip's route. A driver whose resolved
// entry is inactive has no availability that day.
func (s *MatchingService) AvailableDrivers(ctx context.Context, trip *domain.Trip) ([]domain.User, error) {
	route, err := s.catalog.RouteByID(trip.RouteID)
	if err != nil {
		return nil, fmt.Errorf("route %s: %w", trip.RouteID, err)
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	corridor := s.catalog.Stops()

	var out []domain.User
	for _, u := range users {
		if u.Role != domain.RoleDriver || u.Status != domain.StatusActive {
			continue
		}

		day := domain.EffectiveRoute(&u, trip.Date)
		if day == nil || !day.Active {
			continue
		}

		if corridor.Compatible(day.Origin, day.Destination, route.Origin, route.Destination) {
			out = append(out, u)
		}
	}
	return out, nil
}
