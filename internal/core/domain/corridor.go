package domain

// Corridor is an ordered sequence of stop names along a linear highway.
// The order encodes travel direction: a segment whose destination index
// is greater than its origin index runs "north" along the corridor.
type Corridor []string

// EN1 is the main national-road corridor, Maputo outward. Maputo is the
// anchor every seed fare is indexed against.
var EN1 = Corridor{
	"Maputo",
	"Macia",
	"Xai-Xai",
	"Chokwe",
	"Chibuto",
	"Manjacaze",
	"Zavala",
	"Inharrime",
	"Maxixe",
	"Homoine",
	"Panda",
	"Massinga",
	"Vilanculos",
}

// Index returns the position of stop in the corridor, or -1 if the stop
// is not on it (minor townships).
func (c Corridor) Index(stop string) int {
	for i, s := range c {
		if s == stop {
			return i
		}
	}
	return -1
}

// Anchor returns the corridor's reference stop.
func (c Corridor) Anchor() string {
	return c[0]
}

// Compatible reports whether a driver travelling driverOrigin to
// driverDest can serve a passenger going passOrigin to passDest.
//
// A driver whose leg spans a superset of the requested segment can pick
// up and drop off anywhere along that span, so containment, not exact
// match, is the test. Both parties must travel the same direction; when
// the driver runs backward along the corridor the index comparisons
// flip, because indices decrease along travel. Stops not on the
// corridor degrade to an exact match of both endpoints.
func (c Corridor) Compatible(driverOrigin, driverDest, passOrigin, passDest string) bool {
	dStart := c.Index(driverOrigin)
	dEnd := c.Index(driverDest)
	pStart := c.Index(passOrigin)
	pEnd := c.Index(passDest)

	if dStart == -1 || dEnd == -1 || pStart == -1 || pEnd == -1 {
		return driverOrigin == passOrigin && driverDest == passDest
	}

	driverForward := dEnd > dStart
	passForward := pEnd > pStart
	if driverForward != passForward {
		return false
	}

	if driverForward {
		return dStart <= pStart && dEnd >= pEnd
	}
	return dStart >= pStart && dEnd <= pEnd
}
