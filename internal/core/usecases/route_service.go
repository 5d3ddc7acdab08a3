package usecases

import (
	"github.com/goquantum/booking/internal/core/domain"
)

// RouteService exposes the static route catalog.
type RouteService struct {
	catalog *domain.Catalog
}

// NewRouteService creates a new RouteService.
func NewRouteService(catalog *domain.Catalog) *RouteService {
	return &RouteService{catalog: catalog}
}

// Routes returns every priced route.
func (s *RouteService) Routes() []domain.Route {
	return s.catalog.All()
}

// Stops returns the ordered corridor stops.
func (s *RouteService) Stops() domain.Corridor {
	return s.catalog.Stops()
}

// RouteByID returns one route.
func (s *RouteService) RouteByID(id string) (*domain.Route, error) {
	return s.catalog.RouteByID(id)
}

// PriceOf returns the fare for an ordered origin-destination pair.
func (s *RouteService) PriceOf(origin, destination string) (float64, error) {
	return s.catalog.PriceOf(origin, destination)
}

// ParcelEstimate returns the reference parcel cost for a route. The
// binding price is always the admin's quote.
func (s *RouteService) ParcelEstimate(routeID string) (float64, error) {
	route, err := s.catalog.RouteByID(routeID)
	if err != nil {
		return 0, err
	}
	return domain.ParcelEstimate(*route), nil
}
