package usecases

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/goquantum/booking/internal/core/domain"
	"github.com/goquantum/booking/internal/core/ports"
)

// PaymentSort orders the admin payments report.
type PaymentSort string

const (
	SortDateDesc   PaymentSort = "date_desc"
	SortDateAsc    PaymentSort = "date_asc"
	SortAmountDesc PaymentSort = "amount_desc"
	SortAmountAsc  PaymentSort = "amount_asc"
)

// RevenueSummary aggregates money over trips that actually carry a
// price: pending, cancelled, and unquoted parcels are excluded.
type RevenueSummary struct {
	Revenue       float64 `json:"revenue"`
	Commission    float64 `json:"commission"`
	DriverPayouts float64 `json:"driver_payouts"`
	Trips         int     `json:"trips"`
}

// AdminService covers the administrator's reconciliation flows:
// quoting parcels, assigning drivers, and payment reporting.
type AdminService struct {
	trips  ports.TripRepository
	users  ports.UserRepository
	events ports.EventPublisher
}

// NewAdminService creates a new AdminService. events may be nil.
func NewAdminService(trips ports.TripRepository, users ports.UserRepository, events ports.EventPublisher) *AdminService {
	return &AdminService{trips: trips, users: users, events: events}
}

// SetParcelQuote prices a waiting parcel. The commission split is
// recomputed from the quoted price and the passenger is handed the
// quote to accept.
func (s *AdminService) SetParcelQuote(ctx context.Context, tripID string, price float64) (*domain.Trip, error) {
	if price <= 0 {
		return nil, fmt.Errorf("quote price must be positive, got %v", price)
	}

	return s.transition(ctx, tripID, domain.ActionSetQuote, domain.EventQuoteSet, func(t *domain.Trip) {
		t.TotalPrice = price
		t.Commission, t.DriverEarnings = domain.Split(price)
	})
}

// AssignDriver puts an active driver on a pending trip.
func (s *AdminService) AssignDriver(ctx context.Context, tripID, driverID string) (*domain.Trip, error) {
	driver, err := s.users.GetByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("driver %s: %w", driverID, err)
	}
	if driver.Role != domain.RoleDriver {
		return nil, fmt.Errorf("assign %s: %w", driverID, domain.ErrNotDriver)
	}

	return s.transition(ctx, tripID, domain.ActionAssignDriver, domain.EventDriverAssigned, func(t *domain.Trip) {
		t.DriverID = &driver.ID
	})
}

// Revenue sums confirmed money across the whole trip collection.
func (s *AdminService) Revenue(ctx context.Context) (*RevenueSummary, error) {
	all, err := s.trips.List(ctx)
	if err != nil {
		return nil, err
	}

	var sum RevenueSummary
	for _, t := range all {
		if !countsAsRevenue(t.Status) {
			continue
		}
		sum.Revenue += t.TotalPrice
		sum.Commission += t.Commission
		sum.DriverPayouts += t.DriverEarnings
		sum.Trips++
	}
	return &sum, nil
}

// Payments lists reconcilable trips, optionally filtered to one
// payment method, in the requested order. Cancelled trips and parcels
// still waiting for a quote carry no payment and are skipped.
func (s *AdminService) Payments(ctx context.Context, method domain.PaymentMethod, order PaymentSort) ([]domain.Trip, error) {
	all, err := s.trips.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []domain.Trip
	for _, t := range all {
		if t.Status == domain.StatusCancelled || t.Status == domain.StatusWaitingQuote {
			continue
		}
		if method != "" && t.PaymentMethod != method {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch order {
		case SortDateAsc:
			return out[i].Date < out[j].Date
		case SortAmountDesc:
			return out[i].TotalPrice > out[j].TotalPrice
		case SortAmountAsc:
			return out[i].TotalPrice < out[j].TotalPrice
		default:
			return out[i].Date > out[j].Date
		}
	})
	return out, nil
}

func countsAsRevenue(s domain.TripStatus) bool {
	switch s {
	case domain.StatusPendingTrip, domain.StatusCancelled, domain.StatusWaitingQuote:
		return false
	}
	return true
}

func (s *AdminService) transition(
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

	if s.events != nil {
		_ = s.events.PublishTripEvent(ctx, &domain.TripEvent{
			TripID:   trip.ID,
			Kind:     kind,
			Status:   trip.Status,
			DriverID: trip.DriverID,
			Time:     time.Now(),
		})
	}
	return trip, nil
}
