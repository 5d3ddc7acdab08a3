package domain

import "time"

// TripEventKind names an externally observable lifecycle mutation.
type TripEventKind string

const (
	EventTripCreated     TripEventKind = "created"
	EventQuoteSet        TripEventKind = "quote_set"
	EventQuoteAccepted   TripEventKind = "quote_accepted"
	EventDriverAssigned  TripEventKind = "driver_assigned"
	EventTripStarted     TripEventKind = "started"
	EventTripCompleted   TripEventKind = "completed"
	EventTripCancelled   TripEventKind = "cancelled"
	EventTripRescheduled TripEventKind = "rescheduled"
)

// TripEvent is published after a trip mutation is persisted.
type TripEvent struct {
	TripID   string        `json:"trip_id"`
	Kind     TripEventKind `json:"kind"`
	Status   TripStatus    `json:"status"`
	DriverID *string       `json:"driver_id,omitempty"`
	Time     time.Time     `json:"time"`
}
