package domain

import "time"

// DateKey is a calendar date in YYYY-MM-DD form, the key type for
// specific-date schedule overrides.
type DateKey string

const dateKeyLayout = "2006-01-02"

// NewDateKey builds a DateKey from a time.
func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(dateKeyLayout))
}

// ParseDateKey validates a YYYY-MM-DD string.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(dateKeyLayout, s)
	if err != nil {
		return "", err
	}
	return NewDateKey(t), nil
}

// Weekday returns the weekday the date falls on.
func (k DateKey) Weekday() (time.Weekday, error) {
	t, err := time.Parse(dateKeyLayout, string(k))
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// ForWeekday returns the schedule entry for a weekday.
func (w WeeklySchedule) ForWeekday(d time.Weekday) DailyRoute {
	switch d {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// EffectiveRoute resolves a driver's declared segment for a calendar
// date: a specific-date override wins over the weekly template, and a
// driver with neither has no availability. The caller still has to
// check Active; an inactive entry exists but counts as unavailable.
func EffectiveRoute(driver *User, date DateKey) *DailyRoute {
	if driver.SpecificSchedule != nil {
		if dr, ok := driver.SpecificSchedule[date]; ok {
			return &dr
		}
	}

	if driver.Schedule == nil {
		return nil
	}
	weekday, err := date.Weekday()
	if err != nil {
		return nil
	}
	dr := driver.Schedule.ForWeekday(weekday)
	return &dr
}

// DefaultWeeklySchedule is the template a new driver starts with:
// anchor out on one day, back the next.
func DefaultWeeklySchedule() WeeklySchedule {
	out := DailyRoute{Origin: "Maputo", Destination: "Xai-Xai", Active: true}
	back := DailyRoute{Origin: "Xai-Xai", Destination: "Maputo", Active: true}
	return WeeklySchedule{
		Monday:    out,
		Tuesday:   back,
		Wednesday: out,
		Thursday:  back,
		Friday:    out,
		Saturday:  back,
		Sunday:    out,
	}
}
