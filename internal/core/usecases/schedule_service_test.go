package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goquantum/booking/internal/core/domain"
	"github.com/goquantum/booking/internal/core/usecases"
)

func TestSpecificDateOverridesWeekly(t *testing.T) {
	_, users := newRepos()
	svc := usecases.NewScheduleService(users)
	ctx := context.Background()

	weekly := domain.DefaultWeeklySchedule()
	seedUser(t, users, domain.User{
		ID: "driver1", Role: domain.RoleDriver, Status: domain.StatusActive,
		Schedule: &weekly,
	})

	override := domain.DailyRoute{Origin: "Maputo", Destination: "Vilanculos", Active: true}
	if err := svc.UpdateSpecificDate(ctx, "driver1", "2024-06-01", override); err != nil {
		t.Fatalf("UpdateSpecificDate: %v", err)
	}

	day, err := svc.EffectiveRoute(ctx, "driver1", "2024-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if day == nil || *day != override {
		t.Errorf("effective route = %+v, want the override", day)
	}

	// The following Saturday falls back to the weekly template.
	next, err := svc.EffectiveRoute(ctx, "driver1", "2024-06-08")
	if err != nil {
		t.Fatal(err)
	}
	if next == nil || next.Origin != "Xai-Xai" || next.Destination != "Maputo" {
		t.Errorf("effective route = %+v, want the Saturday template", next)
	}
}

func TestUpdateWeeklyReplacesTemplate(t *testing.T) {
	_, users := newRepos()
	svc := usecases.NewScheduleService(users)
	ctx := context.Background()

	seedUser(t, users, domain.User{
		ID: "driver1", Role: domain.RoleDriver, Status: domain.StatusActive,
	})

	weekly := domain.DefaultWeeklySchedule()
	weekly.Sunday = domain.DailyRoute{Active: false}
	if err := svc.UpdateWeekly(ctx, "driver1", weekly); err != nil {
		t.Fatalf("UpdateWeekly: %v", err)
	}

	// 2024-06-02 is a Sunday.
	day, err := svc.EffectiveRoute(ctx, "driver1", "2024-06-02")
	if err != nil {
		t.Fatal(err)
	}
	if day == nil {
		t.Fatal("weekly template entry must resolve")
	}
	if day.Active {
		t.Error("sunday was declared off, entry must be inactive")
	}
}

func TestEffectiveRouteWithoutSchedule(t *testing.T) {
	_, users := newRepos()
	svc := usecases.NewScheduleService(users)
	ctx := context.Background()

	seedUser(t, users, domain.User{
		ID: "driver1", Role: domain.RoleDriver, Status: domain.StatusActive,
	})

	day, err := svc.EffectiveRoute(ctx, "driver1", "2024-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if day != nil {
		t.Errorf("driver with no schedule resolved %+v, want nil", day)
	}
}

func TestScheduleRejectsNonDriver(t *testing.T) {
	_, users := newRepos()
	svc := usecases.NewScheduleService(users)
	ctx := context.Background()

	seedUser(t, users, domain.User{
		ID: "pass1", Role: domain.RolePassenger, Status: domain.StatusActive,
	})

	err := svc.UpdateWeekly(ctx, "pass1", domain.DefaultWeeklySchedule())
	if !errors.Is(err, domain.ErrNotDriver) {
		t.Errorf("got %v, want ErrNotDriver", err)
	}
}
