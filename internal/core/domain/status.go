package domain

// TripStatus is a trip's position in its lifecycle.
type TripStatus string

const (
	// StatusPendingTrip: paid (or quoted-and-paid) and waiting for a driver.
	StatusPendingTrip TripStatus = "pending"
	// StatusWaitingQuote: parcel sent, admin still has to set a price.
	StatusWaitingQuote TripStatus = "waiting_quote"
	// StatusQuoteReceived: admin priced the parcel, passenger has to accept.
	StatusQuoteReceived TripStatus = "quote_received"
	// StatusConfirmed: driver assigned, ready to start.
	StatusConfirmed TripStatus = "confirmed"
	// StatusInProgress: passenger confirmed boarding.
	StatusInProgress TripStatus = "in-progress"
	StatusCompleted  TripStatus = "completed"
	StatusCancelled  TripStatus = "cancelled"
)

// TripAction is a request to move a trip through its lifecycle.
type TripAction string

const (
	ActionSetQuote     TripAction = "set_quote"
	ActionAcceptQuote  TripAction = "accept_quote"
	ActionAssignDriver TripAction = "assign_driver"
	ActionStart        TripAction = "start"
	ActionComplete     TripAction = "complete"
	ActionCancel       TripAction = "cancel"
	ActionReschedule   TripAction = "reschedule"
)

// transitions is the whole state machine: action -> current status ->
// next status. Anything not in the table is an invalid transition.
var transitions = map[TripAction]map[TripStatus]TripStatus{
	ActionSetQuote: {
		StatusWaitingQuote: StatusQuoteReceived,
	},
	ActionAcceptQuote: {
		StatusQuoteReceived: StatusPendingTrip,
	},
	ActionAssignDriver: {
		StatusPendingTrip: StatusConfirmed,
	},
	ActionStart: {
		StatusConfirmed: StatusInProgress,
	},
	ActionComplete: {
		StatusInProgress: StatusCompleted,
	},
	ActionCancel: {
		StatusPendingTrip:   StatusCancelled,
		StatusConfirmed:     StatusCancelled,
		StatusWaitingQuote:  StatusCancelled,
		StatusQuoteReceived: StatusCancelled,
	},
	ActionReschedule: {
		StatusPendingTrip: StatusPendingTrip,
		StatusConfirmed:   StatusPendingTrip,
	},
}

// Next returns the status an action leads to from s, and whether the
// action is permitted at all.
func (s TripStatus) Next(action TripAction) (TripStatus, bool) {
	next, ok := transitions[action][s]
	return next, ok
}

// Terminal reports whether no action can move the trip further.
func (s TripStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// InitialStatus is the state a fresh trip starts in: parcels wait for
// an admin quote, seat bookings go straight to pending.
func InitialStatus(t TripType) TripStatus {
	if t == TypeParcel {
		return StatusWaitingQuote
	}
	return StatusPendingTrip
}
