package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goquantum/booking/internal/core/domain"
	"github.com/goquantum/booking/internal/core/usecases"
)

func TestRegisterDriverDefaults(t *testing.T) {
	_, users := newRepos()
	svc := usecases.NewUserService(users)

	u, err := svc.Register(context.Background(), domain.User{
		Name: "João", Email: "joao@example.com", Role: domain.RoleDriver,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if u.ID == "" {
		t.Error("registration must assign an id")
	}
	if u.Status != domain.StatusPending {
		t.Errorf("status = %s, want pending approval", u.Status)
	}
	if u.Rating != 5.0 {
		t.Errorf("rating = %v, want 5.0", u.Rating)
	}
	if u.Schedule == nil {
		t.Fatal("driver must start with the default weekly template")
	}
	if u.Schedule.Monday.Origin != "Maputo" || u.Schedule.Monday.Destination != "Xai-Xai" {
		t.Errorf("monday template = %+v", u.Schedule.Monday)
	}
	if u.SpecificSchedule == nil {
		t.Error("driver must start with an empty override map")
	}
}

func TestRegisterPassengerIsActiveImmediately(t *testing.T) {
	_, users := newRepos()
	svc := usecases.NewUserService(users)

	u, err := svc.Register(context.Background(), domain.User{
		Name: "Maria", Email: "maria@example.com", Role: domain.RolePassenger,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Status != domain.StatusActive {
		t.Errorf("status = %s, want active", u.Status)
	}
	if u.Schedule != nil {
		t.Error("passengers carry no schedule")
	}
}

func TestRegisterExistingEmailReturnsExistingAccount(t *testing.T) {
	_, users := newRepos()
	svc := usecases.NewUserService(users)
	ctx := context.Background()

	first, err := svc.Register(ctx, domain.User{Name: "Maria", Email: "maria@example.com", Role: domain.RolePassenger})
	if err != nil {
		t.Fatal(err)
	}

	second, err := svc.Register(ctx, domain.User{Name: "Someone Else", Email: "maria@example.com", Role: domain.RoleDriver})
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != first.ID {
		t.Errorf("re-registration created a new account %s, want %s", second.ID, first.ID)
	}
	if second.Name != "Maria" {
		t.Errorf("existing account was overwritten: name = %s", second.Name)
	}

	all, err := svc.Users(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("have %d accounts, want 1", len(all))
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	_, users := newRepos()
	svc := usecases.NewUserService(users)

	if _, err := svc.Login(context.Background(), "ghost@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestUpdateStatusApprovesDriver(t *testing.T) {
	_, users := newRepos()
	svc := usecases.NewUserService(users)
	ctx := context.Background()

	driver, err := svc.Register(ctx, domain.User{Name: "Pedro", Email: "pedro@example.com", Role: domain.RoleDriver})
	if err != nil {
		t.Fatal(err)
	}

	approved, err := svc.UpdateStatus(ctx, driver.ID, domain.StatusActive)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if approved.Status != domain.StatusActive {
		t.Errorf("status = %s, want active", approved.Status)
	}

	stored, err := svc.UserByID(ctx, driver.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != domain.StatusActive {
		t.Errorf("stored status = %s, want active", stored.Status)
	}
}
