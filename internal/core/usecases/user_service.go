package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goquantum/booking/internal/core/domain"
	"github.com/goquantum/booking/internal/core/ports"
)

// UserService handles registration, login, and account status changes.
type UserService struct {
	users ports.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates an account. Drivers start pending with the default
// weekly schedule and a 5.0 rating; everyone else starts active. An
// already-registered email returns the existing account untouched.
func (s *UserService) Register(ctx context.Context, u domain.User) (*domain.User, error) {
	if existing, err := s.users.GetByEmail(ctx, u.Email); err == nil {
		return existing, nil
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	if u.Role == domain.RoleDriver {
		u.Status = domain.StatusPending
		schedule := domain.DefaultWeeklySchedule()
		u.Schedule = &schedule
		u.SpecificSchedule = map[domain.DateKey]domain.DailyRoute{}
		u.Rating = 5.0
	} else {
		u.Status = domain.StatusActive
	}

	if err := s.users.Put(ctx, &u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return &u, nil
}

// Login resolves an account by email. There is no credential check in
// this demo scope; the caller is trusted.
func (s *UserService) Login(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// Users returns every account.
func (s *UserService) Users(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// UserByID returns a single account.
func (s *UserService) UserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateStatus approves, suspends, or reactivates an account.
func (s *UserService) UpdateStatus(ctx context.Context, userID string, status domain.UserStatus) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, err)
	}

	u.Status = status
	if err := s.users.Put(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return u, nil
}
