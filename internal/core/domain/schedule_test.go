package domain_test

import (
	"testing"
	"time"

	"github.com/goquantum/booking/internal/core/domain"
)

func TestSpecificDateOverridesWeekly(t *testing.T) {
	schedule := domain.DefaultWeeklySchedule()
	driver := &domain.User{
		ID:       "d1",
		Role:     domain.RoleDriver,
		Schedule: &schedule,
		SpecificSchedule: map[domain.DateKey]domain.DailyRoute{
			"2024-06-01": {Origin: "Maputo", Destination: "Vilanculos", Active: true},
		},
	}

	got := domain.EffectiveRoute(driver, "2024-06-01")
	if got == nil {
		t.Fatal("expected a route for the override date")
	}
	if got.Destination != "Vilanculos" {
		t.Errorf("override date resolved to %s->%s, want the Vilanculos override", got.Origin, got.Destination)
	}
}

func TestWeeklyTemplateFallback(t *testing.T) {
	schedule := domain.DefaultWeeklySchedule()
	driver := &domain.User{ID: "d1", Role: domain.RoleDriver, Schedule: &schedule}

	// 2024-06-01 is a Saturday: the default template runs Xai-Xai->Maputo
	got := domain.EffectiveRoute(driver, "2024-06-01")
	if got == nil {
		t.Fatal("expected the weekly entry")
	}
	if got.Origin != "Xai-Xai" || got.Destination != "Maputo" {
		t.Errorf("saturday resolved to %s->%s, want Xai-Xai->Maputo", got.Origin, got.Destination)
	}
}

func TestNoScheduleMeansNoAvailability(t *testing.T) {
	driver := &domain.User{ID: "d1", Role: domain.RoleDriver}
	if got := domain.EffectiveRoute(driver, "2024-06-01"); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestInactiveOverrideStillResolves(t *testing.T) {
	// The record exists; callers decide that Active=false means unavailable.
	driver := &domain.User{
		ID:   "d1",
		Role: domain.RoleDriver,
		SpecificSchedule: map[domain.DateKey]domain.DailyRoute{
			"2024-06-01": {Origin: "Maputo", Destination: "Xai-Xai", Active: false},
		},
	}
	got := domain.EffectiveRoute(driver, "2024-06-01")
	if got == nil {
		t.Fatal("expected the inactive record to resolve")
	}
	if got.Active {
		t.Error("expected Active=false")
	}
}

func TestDateKey(t *testing.T) {
	k, err := domain.ParseDateKey("2024-06-01")
	if err != nil {
		t.Fatalf("ParseDateKey: %v", err)
	}
	wd, err := k.Weekday()
	if err != nil {
		t.Fatalf("Weekday: %v", err)
	}
	if wd != time.Saturday {
		t.Errorf("2024-06-01 weekday = %s, want Saturday", wd)
	}

	if _, err := domain.ParseDateKey("01/06/2024"); err == nil {
		t.Error("expected an error for a non-ISO date")
	}

	if got := domain.NewDateKey(time.Date(2024, 6, 1, 15, 4, 5, 0, time.UTC)); got != "2024-06-01" {
		t.Errorf("NewDateKey = %s, want 2024-06-01", got)
	}
}

func TestForWeekdayCoversAllDays(t *testing.T) {
	w := domain.WeeklySchedule{
		Monday:    domain.DailyRoute{Origin: "mon"},
		Tuesday:   domain.DailyRoute{Origin: "tue"},
		Wednesday: domain.DailyRoute{Origin: "wed"},
		Thursday:  domain.DailyRoute{Origin: "thu"},
		Friday:    domain.DailyRoute{Origin: "fri"},
		Saturday:  domain.DailyRoute{Origin: "sat"},
		Sunday:    domain.DailyRoute{Origin: "sun"},
	}
	want := map[time.Weekday]string{
		time.Monday: "mon", time.Tuesday: "tue", time.Wednesday: "wed",
		time.Thursday: "thu", time.Friday: "fri", time.Saturday: "sat",
		time.Sunday: "sun",
	}
	for day, origin := range want {
		if got := w.ForWeekday(day); got.Origin != origin {
			t.Errorf("ForWeekday(%s) = %s, want %s", day, got.Origin, origin)
		}
	}
}
