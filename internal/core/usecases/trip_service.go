package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goquantum/booking/internal/core/domain"
	"github.com/goquantum/booking/internal/core/ports"
)

// TripService owns the trip lifecycle: creation, quoting, assignment,
// progress, completion, cancellation. Every mutation goes through the
// domain transition table; an action the current status does not
// permit is rejected and the stored trip stays untouched.
type TripService struct {
	trips   ports.TripRepository
	users   ports.UserRepository
	catalog *domain.Catalog
	events  ports.EventPublisher
}

// NewTripService creates a new TripService. events may be nil to
// disable lifecycle event publishing.
func NewTripService(
	trips ports.TripRepository,
	users ports.UserRepository,
	catalog *domain.Catalog,
	events ports.EventPublisher,
) *TripService {
	return &TripService{trips: trips, users: users, catalog: catalog, events: events}
}

// CreateTrip books seats on a route. The trip starts pending with no
// driver; the fare is the route price times the seat count, split at
// the fixed commission rates.
func (s *TripService) CreateTrip(
	ctx context.Context,
	passengerID, routeID string,
	date domain.DateKey,
	seats int,
	method domain.PaymentMethod,
) (*domain.Trip, error) {
	route, err := s.catalog.RouteByID(routeID)
	if err != nil {
		return nil, fmt.Errorf("route %s: %w", routeID, err)
	}
	if seats < 1 {
		return nil, fmt.Errorf("seats must be at least 1, got %d", seats)
	}

	total := domain.PassengerFare(*route, seats)
	commission, earnings := domain.Split(total)

	trip := &domain.Trip{
		ID:             uuid.NewString(),
		RouteID:        route.ID,
		DriverID:       nil,
		PassengerID:    passengerID,
		Date:           date,
		Seats:          seats,
		Type:           domain.TypePassenger,
		Status:         domain.InitialStatus(domain.TypePassenger),
		TotalPrice:     total,
		Commission:     commission,
		DriverEarnings: earnings,
		PaymentMethod:  method,
	}

	if err := s.trips.Put(ctx, trip); err != nil {
		return nil, fmt.Errorf("save trip: %w", err)
	}
	s.publish(ctx, trip, domain.EventTripCreated)
	return trip, nil
}

// RequestParcel creates a parcel trip. It carries no price until the
// admin sets a quote, so it starts in waiting_quote with a zero total.
func (s *TripService) RequestParcel(
	ctx context.Context,
	passengerID, routeID string,
	date domain.DateKey,
	details domain.ParcelDetails,
) (*domain.Trip, error) {
	route, err := s.catalog.RouteByID(routeID)
	if err != nil {
		return nil, fmt.Errorf("route %s: %w", routeID, err)
	}

	trip := &domain.Trip{
		ID:            uuid.NewString(),
		RouteID:       route.ID,
		PassengerID:   passengerID,
		Date:          date,
		Type:          domain.TypeParcel,
		Status:        domain.InitialStatus(domain.TypeParcel),
		ParcelDetails: &details,
	}

	if err := s.trips.Put(ctx, trip); err != nil {
		return nil, fmt.Errorf("save trip: %w", err)
	}
	s.publish(ctx, trip, domain.EventTripCreated)
	return trip, nil
}

// AcceptParcelQuote records the passenger accepting the admin's quote
// and choosing how to pay. The trip becomes pending, ready for driver
// assignment.
func (s *TripService) AcceptParcelQuote(ctx context.Context, tripID string, method domain.PaymentMethod) (*domain.Trip, error) {
	return s.transition(ctx, tripID, domain.ActionAcceptQuote, domain.EventQuoteAccepted, func(t *domain.Trip) {
		t.PaymentMethod = method
	})
}

// StartTrip records the passenger confirming boarding.
func (s *TripService) StartTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	return s.transition(ctx, tripID, domain.ActionStart, domain.EventTripStarted, nil)
}

// CompleteTripWithRating records arrival plus the passenger's rating
// and feedback tags, then folds the rating into the driver's running
// rating. The driver update is best-effort; the completed trip is
// already persisted.
func (s *TripService) CompleteTripWithRating(ctx context.Context, tripID string, rating int, tags []string) (*domain.Trip, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be 1-5, got %d", rating)
	}

	trip, err := s.transition(ctx, tripID, domain.ActionComplete, domain.EventTripCompleted, func(t *domain.Trip) {
		t.Rating = rating
		t.FeedbackTags = tags
	})
	if err != nil {
		return nil, err
	}

	if trip.DriverID != nil {
		if driver, derr := s.users.GetByID(ctx, *trip.DriverID); derr == nil {
			driver.Rating = domain.BlendRating(driver.Rating, rating)
			_ = s.users.Put(ctx, driver)
		}
	}

	return trip, nil
}

// CancelTrip cancels a trip and releases its driver. Cancelling an
// already-cancelled trip is an idempotent no-op.
func (s *TripService) CancelTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("trip %s: %w", tripID, err)
	}
	if trip.Status == domain.StatusCancelled {
		return trip, nil
	}

	return s.transition(ctx, tripID, domain.ActionCancel, domain.EventTripCancelled, func(t *domain.Trip) {
		t.DriverID = nil
	})
}

// RescheduleTrip moves a trip to a new date. The driver is released
// and the trip returns to pending so the admin re-assigns against the
// new date's schedules.
func (s *TripService) RescheduleTrip(ctx context.Context, tripID string, newDate domain.DateKey) (*domain.Trip, error) {
	return s.transition(ctx, tripID, domain.ActionReschedule, domain.EventTripRescheduled, func(t *domain.Trip) {
		t.Date = newDate
		t.DriverID = nil
	})
}

// TripByID returns a single trip.
func (s *TripService) TripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	return s.trips.GetByID(ctx, tripID)
}

// TripsForUser returns the trips visible to a user: everything for an
// admin, assigned trips for a driver, own bookings for a passenger.
func (s *TripService) TripsForUser(ctx context.Context, userID string, role domain.UserRole) ([]domain.Trip, error) {
	all, err := s.trips.List(ctx)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleAdmin {
		return all, nil
	}

	var out []domain.Trip
	for _, t := range all {
		switch role {
		case domain.RoleDriver:
			if t.DriverID != nil && *t.DriverID == userID {
				out = append(out, t)
			}
		default:
			if t.PassengerID == userID {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

// transition loads a trip, applies one action through the domain
// transition table, persists the result, and publishes the event.
func (s *TripService) transition(
	ctx context.Context,
	tripID string,
	action domain.TripAction,
	kind domain.TripEventKind,
	mutate func(*domain.Trip),
) (*domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("trip %s: %w", tripID, err)
	}

	next, ok := trip.Status.Next(action)
	if !ok {
		return nil, fmt.Errorf("%s on %s trip %s: %w", action, trip.Status, tripID, domain.ErrInvalidTransition)
	}

	trip.Status = next
	if mutate != nil {
		mutate(trip)
	}

	if err := s.trips.Put(ctx, trip); err != nil {
		return nil, fmt.Errorf("save trip: %w", err)
	}
	s.publish(ctx, trip, kind)
	return trip, nil
}

func (s *TripService) publish(ctx context.Context, trip *domain.Trip, kind domain.TripEventKind) {
	if s.events == nil {
		return
	}
	_ = s.events.PublishTripEvent(ctx, &domain.TripEvent{
		TripID:   trip.ID,
		Kind:     kind,
		Status:   trip.Status,
		DriverID: trip.DriverID,
		Time:     time.Now(),
	})
}
