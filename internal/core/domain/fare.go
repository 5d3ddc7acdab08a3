package domain

// Fixed revenue split. The two rates must sum to 1.0 exactly; values
// are stored unrounded and only floored for display.
const (
	CommissionRate = 0.15
	DriverRate     = 0.85

	// ParcelEstimateRate prices the reference estimate shown for a
	// parcel before the admin quotes it.
	ParcelEstimateRate = 0.2
)

// PassengerFare is the seat price for a booking.
func PassengerFare(route Route, seats int) float64 {
	return route.Price * float64(seats)
}

// ParcelEstimate is the reference cost displayed for a parcel request.
// The actual parcel price is whatever the admin quotes.
func ParcelEstimate(route Route) float64 {
	return route.Price * ParcelEstimateRate
}

// Split divides a total between platform commission and driver earnings.
func Split(total float64) (commission, driverEarnings float64) {
	return total * CommissionRate, total * DriverRate
}
