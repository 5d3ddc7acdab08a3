package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goquantum/booking/internal/core/domain"
	"github.com/goquantum/booking/internal/core/ports"
	"github.com/goquantum/booking/internal/core/usecases"
)

// 2024-06-01 is a Saturday: the default weekly template points drivers
// back toward Maputo that day, so matches on outbound trips need a
// specific-date override.
const matchDate = domain.DateKey("2024-06-01")

func seedUser(t *testing.T, users ports.UserRepository, u domain.User) {
	t.Helper()
	if err := users.Put(context.Background(), &u); err != nil {
		t.Fatal(err)
	}
}

func TestAvailableDriversMatchesContainedSegment(t *testing.T) {
	_, users := newRepos()
	svc := usecases.NewMatchingService(users, domain.NewDefaultCatalog())

	weekly := domain.DefaultWeeklySchedule()

	// Covers Xai-Xai to Massinga: both stops sit inside Maputo-Vilanculos.
	seedUser(t, users, domain.User{
		ID: "driver1", Role: domain.RoleDriver, Status: domain.StatusActive,
		Schedule: &weekly,
		SpecificSchedule: map[domain.DateKey]domain.DailyRoute{
			matchDate: {Origin: "Maputo", Destination: "Vilanculos", Active: true},
		},
	})
	// Saturday template runs Xai-Xai to Maputo: wrong direction.
	seedUser(t, users, domain.User{
		ID: "driver2", Role: domain.RoleDriver, Status: domain.StatusActive,
		Schedule: &weekly,
	})
	// Right segment but still pending approval.
	seedUser(t, users, domain.User{
		ID: "driver3", Role: domain.RoleDriver, Status: domain.StatusPending,
		SpecificSchedule: map[domain.DateKey]domain.DailyRoute{
			matchDate: {Origin: "Maputo", Destination: "Vilanculos", Active: true},
		},
	})
	// Declared the segment but marked the day off.
	seedUser(t, users, domain.User{
		ID: "driver4", Role: domain.RoleDriver, Status: domain.StatusActive,
		SpecificSchedule: map[domain.DateKey]domain.DailyRoute{
			matchDate: {Origin: "Maputo", Destination: "Vilanculos", Active: false},
		},
	})
	// Passengers never match.
	seedUser(t, users, domain.User{
		ID: "pass1", Role: domain.RolePassenger, Status: domain.StatusActive,
	})

	trip := &domain.Trip{ID: "t1", RouteID: "xai-xai_massinga", Date: matchDate}
	matched, err := svc.AvailableDrivers(context.Background(), trip)
	if err != nil {
		t.Fatalf("AvailableDrivers: %v", err)
	}

	if len(matched) != 1 || matched[0].ID != "driver1" {
		ids := make([]string, len(matched))
		for i, u := range matched {
			ids[i] = u.ID
		}
		t.Errorf("matched = %v, want just driver1", ids)
	}
}

func TestAvailableDriversMatchesReturnLeg(t *testing.T) {
	_, users := newRepos()
	svc := usecases.NewMatchingService(users, domain.NewDefaultCatalog())

	weekly := domain.DefaultWeeklySchedule()
	seedUser(t, users, domain.User{
		ID: "driver1", Role: domain.RoleDriver, Status: domain.StatusActive,
		Schedule: &weekly,
	})

	// Saturday template is Xai-Xai to Maputo; the requested segment runs
	// the same backward direction inside it.
	trip := &domain.Trip{ID: "t1", RouteID: "xai-xai_macia", Date: matchDate}
	matched, err := svc.AvailableDrivers(context.Background(), trip)
	if err != nil {
		t.Fatalf("AvailableDrivers: %v", err)
	}
	if len(matched) != 1 || matched[0].ID != "driver1" {
		t.Errorf("matched %d drivers, want driver1 on the return leg", len(matched))
	}
}

func TestAvailableDriversUnknownRoute(t *testing.T) {
	_, users := newRepos()
	svc := usecases.NewMatchingService(users, domain.NewDefaultCatalog())

	trip := &domain.Trip{ID: "t1", RouteID: "nowhere_fast", Date: matchDate}
	if _, err := svc.AvailableDrivers(context.Background(), trip); !errors.Is(err, domain.ErrRouteNotFound) {
		t.Errorf("got %v, want ErrRouteNotFound", err)
	}
}
