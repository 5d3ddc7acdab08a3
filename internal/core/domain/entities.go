package domain

import "math"

// UserRole distinguishes the three account kinds.
type UserRole string

const (
	RolePassenger UserRole = "passenger"
	RoleDriver    UserRole = "driver"
	RoleAdmin     UserRole = "admin"
)

// UserStatus is the account lifecycle state. Drivers register as
// pending and need admin approval to become active.
type UserStatus string

const (
	StatusActive    UserStatus = "active"
	StatusPending   UserStatus = "pending"
	StatusSuspended UserStatus = "suspended"
)

// TripType separates seat bookings from parcel transport.
type TripType string

const (
	TypePassenger TripType = "passenger"
	TypeParcel    TripType = "parcel"
)

// PaymentMethod is how the passenger pays.
type PaymentMethod string

const (
	PayMPesa PaymentMethod = "M-Pesa"
	PayEMola PaymentMethod = "E-Mola"
	PayCash  PaymentMethod = "Cash"
)

// ParcelSize is the declared size class of a parcel.
type ParcelSize string

const (
	ParcelSmall  ParcelSize = "Pequeno"
	ParcelMedium ParcelSize = "Médio"
	ParcelLarge  ParcelSize = "Grande"
)

// Route is a priced origin-destination pair along the corridor.
type Route struct {
	ID          string  `json:"id"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Price       float64 `json:"price"`
}

// DailyRoute is a driver's declared willingness to travel a segment
// on a given day. Active=false means unavailable regardless of the
// origin/destination values.
type DailyRoute struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Active      bool   `json:"active"`
}

// WeeklySchedule is a driver's recurring default, one segment per weekday.
type WeeklySchedule struct {
	Monday    DailyRoute `json:"monday"`
	Tuesday   DailyRoute `json:"tuesday"`
	Wednesday DailyRoute `json:"wednesday"`
	Thursday  DailyRoute `json:"thursday"`
	Friday    DailyRoute `json:"friday"`
	Saturday  DailyRoute `json:"saturday"`
	Sunday    DailyRoute `json:"sunday"`
}

// User is a passenger, driver, or admin account. Schedule fields are
// populated for drivers only. Accounts are never hard-deleted.
type User struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Email            string                 `json:"email"`
	Phone            string                 `json:"phone"`
	Role             UserRole               `json:"role"`
	Status           UserStatus             `json:"status"`
	ProfilePhoto     string                 `json:"profile_photo,omitempty"`
	VehiclePlate     string                 `json:"vehicle_plate,omitempty"`
	IDNumber         string                 `json:"id_number,omitempty"`
	LicensePhoto     string                 `json:"license_photo,omitempty"`
	CurrentLocation  string                 `json:"current_location,omitempty"`
	Rating           float64                `json:"rating,omitempty"`
	Schedule         *WeeklySchedule        `json:"schedule,omitempty"`
	SpecificSchedule map[DateKey]DailyRoute `json:"specific_schedule,omitempty"`
}

// ParcelDetails describes a parcel trip's cargo.
type ParcelDetails struct {
	Size        ParcelSize `json:"size"`
	Description string     `json:"description"`
}

// Trip is the mutable aggregate root of the booking core. Commission
// and DriverEarnings always split TotalPrice at the fixed rates;
// DriverID stays nil until an admin assigns a driver, and TotalPrice
// stays 0 on a parcel trip until an admin quotes it.
type Trip struct {
	ID             string         `json:"id"`
	RouteID        string         `json:"route_id"`
	DriverID       *string        `json:"driver_id"`
	PassengerID    string         `json:"passenger_id"`
	Date           DateKey        `json:"date"`
	Seats          int            `json:"seats"`
	Type           TripType       `json:"type"`
	Status         TripStatus     `json:"status"`
	TotalPrice     float64        `json:"total_price"`
	Commission     float64        `json:"commission"`
	DriverEarnings float64        `json:"driver_earnings"`
	PaymentMethod  PaymentMethod  `json:"payment_method,omitempty"`
	ParcelDetails  *ParcelDetails `json:"parcel_details,omitempty"`
	Rating         int            `json:"rating,omitempty"`
	FeedbackTags   []string       `json:"feedback_tags,omitempty"`
}

// BlendRating folds a newly submitted 1-5 rating into a driver's
// running rating, weighting the prior value as ten samples and
// rounding to one decimal. A zero current rating counts as 5.0.
func BlendRating(current float64, submitted int) float64 {
	if current == 0 {
		current = 5.0
	}
	blended := (current*10 + float64(submitted)) / 11
	return math.Round(blended*10) / 10
}
