package domain

import "strings"

// CatalogParams tunes the route-mesh generation. The defaults come from
// the FEMATRO fare table conventions; both thresholds are distance
// proxies with no geographic basis, so they stay configurable.
type CatalogParams struct {
	// MinFare is the floor applied when the price difference between
	// two stops is below MinDiff.
	MinFare float64
	// MinDiff is the smallest raw anchor-price difference accepted as a
	// fare on its own.
	MinDiff float64
}

// DefaultCatalogParams returns the standard thresholds.
func DefaultCatalogParams() CatalogParams {
	return CatalogParams{MinFare: 100, MinDiff: 50}
}

// SeedFares is the canonical Maputo-anchored fare table. Destinations
// not on the EN1 corridor are minor townships served only directly from
// the anchor.
func SeedFares() []Route {
	return []Route{
		{ID: "1", Origin: "Maputo", Destination: "Xai-Xai", Price: 500},
		{ID: "2", Origin: "Maputo", Destination: "Chibuto", Price: 500},
		{ID: "3", Origin: "Maputo", Destination: "Manjacaze", Price: 600},
		{ID: "4", Origin: "Maputo", Destination: "Chiipadja", Price: 700},
		{ID: "5", Origin: "Maputo", Destination: "Banganhane", Price: 700},
		{ID: "6", Origin: "Maputo", Destination: "Chicavane", Price: 700},
		{ID: "7", Origin: "Maputo", Destination: "Maivene", Price: 600},
		{ID: "8", Origin: "Maputo", Destination: "Muhambe", Price: 600},
		{ID: "9", Origin: "Maputo", Destination: "Barra do Limpopo", Price: 700},
		{ID: "10", Origin: "Maputo", Destination: "V. Pussa", Price: 700},
		{ID: "11", Origin: "Maputo", Destination: "Macia", Price: 300},
		{ID: "12", Origin: "Maputo", Destination: "Chokwe", Price: 500},
		{ID: "13", Origin: "Maputo", Destination: "Chicuacalacuala", Price: 1500},
		{ID: "14", Origin: "Maputo", Destination: "Madender", Price: 600},
		{ID: "15", Origin: "Maputo", Destination: "Zavala", Price: 700},
		{ID: "16", Origin: "Maputo", Destination: "Guambene", Price: 950},
		{ID: "17", Origin: "Maputo", Destination: "Inharrime", Price: 800},
		{ID: "18", Origin: "Maputo", Destination: "Mudjovote", Price: 950},
		{ID: "19", Origin: "Maputo", Destination: "Maxixe", Price: 1000},
		{ID: "20", Origin: "Maputo", Destination: "Homoine", Price: 1100},
		{ID: "21", Origin: "Maputo", Destination: "Panda", Price: 1000},
		{ID: "22", Origin: "Maputo", Destination: "Inhambane-Céu", Price: 1000},
		{ID: "23", Origin: "Maputo", Destination: "Massinga", Price: 1100},
		{ID: "24", Origin: "Maputo", Destination: "Vilanculos", Price: 1500},
	}
}

// Catalog holds the full priced route mesh for a corridor: one route
// per ordered pair of distinct corridor stops, plus anchor-only routes
// for off-corridor townships.
type Catalog struct {
	corridor Corridor
	routes   []Route
	byID     map[string]*Route
	byPair   map[string]*Route
}

// NewCatalog synthesizes the route mesh from the seed table. For each
// ordered pair of corridor stops the price is the absolute difference
// of their anchor prices, floored to MinFare when the raw difference is
// below MinDiff; pairs touching the anchor itself take the exact seed
// price instead of the subtraction, so fares near the anchor are never
// approximated. Seed destinations outside the corridor get just the
// anchor-to-town route and its return, copied from the seed.
func NewCatalog(corridor Corridor, seed []Route, params CatalogParams) *Catalog {
	anchor := corridor.Anchor()

	anchorPrice := map[string]float64{anchor: 0}
	seedByDest := map[string]Route{}
	for _, r := range seed {
		anchorPrice[r.Destination] = r.Price
		seedByDest[r.Destination] = r
	}

	var routes []Route
	for _, origin := range corridor {
		for _, destination := range corridor {
			if origin == destination {
				continue
			}

			price := anchorPrice[destination] - anchorPrice[origin]
			if price < 0 {
				price = -price
			}
			if price < params.MinDiff {
				price = params.MinFare
			}

			if origin == anchor {
				if direct, ok := seedByDest[destination]; ok {
					price = direct.Price
				}
			}
			if destination == anchor {
				if direct, ok := seedByDest[origin]; ok {
					price = direct.Price
				}
			}

			routes = append(routes, Route{
				ID:          routeID(origin, destination),
				Origin:      origin,
				Destination: destination,
				Price:       price,
			})
		}
	}

	for _, base := range seed {
		if corridor.Index(base.Destination) != -1 {
			continue
		}
		routes = append(routes, base)
		routes = append(routes, Route{
			ID:          "ret_" + base.ID,
			Origin:      base.Destination,
			Destination: anchor,
			Price:       base.Price,
		})
	}

	c := &Catalog{
		corridor: corridor,
		routes:   routes,
		byID:     make(map[string]*Route, len(routes)),
		byPair:   make(map[string]*Route, len(routes)),
	}
	for i := range c.routes {
		r := &c.routes[i]
		c.byID[r.ID] = r
		c.byPair[pairKey(r.Origin, r.Destination)] = r
	}
	return c
}

// NewDefaultCatalog builds the EN1 catalog from the standard seed table.
func NewDefaultCatalog() *Catalog {
	return NewCatalog(EN1, SeedFares(), DefaultCatalogParams())
}

// All returns every route in the catalog.
func (c *Catalog) All() []Route {
	out := make([]Route, len(c.routes))
	copy(out, c.routes)
	return out
}

// Stops returns the corridor the catalog was built over.
func (c *Catalog) Stops() Corridor {
	return c.corridor
}

// RouteByID returns the route with the given id.
func (c *Catalog) RouteByID(id string) (*Route, error) {
	r, ok := c.byID[id]
	if !ok {
		return nil, ErrRouteNotFound
	}
	return r, nil
}

// RouteFor returns the route for an ordered origin-destination pair.
func (c *Catalog) RouteFor(origin, destination string) (*Route, error) {
	r, ok := c.byPair[pairKey(origin, destination)]
	if !ok {
		return nil, ErrRouteNotFound
	}
	return r, nil
}

// PriceOf returns the fare for an ordered origin-destination pair.
func (c *Catalog) PriceOf(origin, destination string) (float64, error) {
	r, err := c.RouteFor(origin, destination)
	if err != nil {
		return 0, err
	}
	return r.Price, nil
}

func routeID(origin, destination string) string {
	id := strings.ToLower(origin + "_" + destination)
	return strings.ReplaceAll(id, " ", "")
}

func pairKey(origin, destination string) string {
	return origin + "\x00" + destination
}
