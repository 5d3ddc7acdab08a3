package usecases

import (
	"context"
	"fmt"

	"github.com/goquantum/booking/internal/core/domain"
	"github.com/goquantum/booking/internal/core/ports"
)

// ScheduleService manages driver availability declarations.
type ScheduleService struct {
	users ports.UserRepository
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(users ports.UserRepository) *ScheduleService {
	return &ScheduleService{users: users}
}

// UpdateWeekly replaces a driver's recurring weekly template.
func (s *ScheduleService) UpdateWeekly(ctx context.Context, driverID string, schedule domain.WeeklySchedule) error {
	driver, err := s.driver(ctx, driverID)
	if err != nil {
		return err
	}

	driver.Schedule = &schedule
	return s.users.Put(ctx, driver)
}

// UpdateSpecificDate sets a single-date override that wins over the
// weekly template for that exact calendar date.
func (s *ScheduleService) UpdateSpecificDate(ctx context.Context, driverID string, date domain.DateKey, route domain.DailyRoute) error {
	driver, err := s.driver(ctx, driverID)
	if err != nil {
		return err
	}

	if driver.SpecificSchedule == nil {
		driver.SpecificSchedule = map[domain.DateKey]domain.DailyRoute{}
	}
	driver.SpecificSchedule[date] = route
	return s.users.Put(ctx, driver)
}

// EffectiveRoute resolves a driver's declared segment for a date, or
// nil when the driver has no availability that day.
func (s *ScheduleService) EffectiveRoute(ctx context.Context, driverID string, date domain.DateKey) (*domain.DailyRoute, error) {
	driver, err := s.driver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	return domain.EffectiveRoute(driver, date), nil
}

func (s *ScheduleService) driver(ctx context.Context, driverID string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", driverID, err)
	}
	if u.Role != domain.RoleDriver {
		return nil, fmt.Errorf("user %s: %w", driverID, domain.ErrNotDriver)
	}
	return u, nil
}
