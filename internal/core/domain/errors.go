package domain

import "errors"

var (
	// ErrNotFound is returned when a trip or user id resolves to nothing.
	ErrNotFound = errors.New("not found")

	// ErrRouteNotFound is returned when no catalog route exists for an
	// id or origin-destination pair. Every valid pair of corridor stops
	// has a route, so hitting this indicates bad input or a broken seed
	// table, not a recoverable runtime condition.
	ErrRouteNotFound = errors.New("route not found")

	// ErrInvalidTransition is returned when an action is attempted
	// against a trip whose current status does not permit it. The trip
	// is left unchanged.
	ErrInvalidTransition = errors.New("invalid trip transition")

	// ErrNotDriver is returned when a schedule or assignment operation
	// targets a user that is not a driver.
	ErrNotDriver = errors.New("user is not a driver")
)
