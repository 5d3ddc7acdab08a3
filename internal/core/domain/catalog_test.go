package domain_test

import (
	"errors"
	"testing"

	"github.com/goquantum/booking/internal/core/domain"
)

func TestCatalogMeshCoversEveryOrderedPair(t *testing.T) {
	cat := domain.NewDefaultCatalog()
	stops := cat.Stops()

	seen := map[string]int{}
	for _, r := range cat.All() {
		if r.Price <= 0 {
			t.Errorf("route %s has non-positive price %v", r.ID, r.Price)
		}
		seen[r.Origin+"->"+r.Destination]++
	}

	for _, origin := range stops {
		for _, destination := range stops {
			if origin == destination {
				continue
			}
			if n := seen[origin+"->"+destination]; n != 1 {
				t.Errorf("pair %s->%s appears %d times, want exactly 1", origin, destination, n)
			}
		}
	}
}

func TestCatalogAnchorPairsUseSeedPrices(t *testing.T) {
	cat := domain.NewDefaultCatalog()

	cases := []struct {
		origin, destination string
		want                float64
	}{
		{"Maputo", "Xai-Xai", 500},
		{"Xai-Xai", "Maputo", 500},
		{"Maputo", "Macia", 300}, // subtraction would also give 300, but must come from the table
		{"Maputo", "Vilanculos", 1500},
		{"Vilanculos", "Maputo", 1500},
	}
	for _, tc := range cases {
		got, err := cat.PriceOf(tc.origin, tc.destination)
		if err != nil {
			t.Fatalf("PriceOf(%s, %s): %v", tc.origin, tc.destination, err)
		}
		if got != tc.want {
			t.Errorf("PriceOf(%s, %s) = %v, want %v", tc.origin, tc.destination, got, tc.want)
		}
	}
}

func TestCatalogDerivedFares(t *testing.T) {
	cat := domain.NewDefaultCatalog()

	// Macia (300) -> Xai-Xai (500): difference rule
	if got, _ := cat.PriceOf("Macia", "Xai-Xai"); got != 200 {
		t.Errorf("Macia->Xai-Xai = %v, want 200", got)
	}
	// Xai-Xai (500) -> Vilanculos (1500)
	if got, _ := cat.PriceOf("Xai-Xai", "Vilanculos"); got != 1000 {
		t.Errorf("Xai-Xai->Vilanculos = %v, want 1000", got)
	}
}

func TestCatalogMinimumFareFloor(t *testing.T) {
	cat := domain.NewDefaultCatalog()

	// Xai-Xai and Chibuto both anchor at 500, raw difference 0
	if got, _ := cat.PriceOf("Xai-Xai", "Chibuto"); got != 100 {
		t.Errorf("Xai-Xai->Chibuto = %v, want floored 100", got)
	}
	// Maxixe (1000) and Panda (1000)
	if got, _ := cat.PriceOf("Panda", "Maxixe"); got != 100 {
		t.Errorf("Panda->Maxixe = %v, want floored 100", got)
	}
}

func TestCatalogOffCorridorTownships(t *testing.T) {
	cat := domain.NewDefaultCatalog()

	out, err := cat.RouteFor("Maputo", "Chicuacalacuala")
	if err != nil {
		t.Fatalf("anchor->township: %v", err)
	}
	if out.Price != 1500 {
		t.Errorf("Maputo->Chicuacalacuala = %v, want 1500", out.Price)
	}

	back, err := cat.RouteFor("Chicuacalacuala", "Maputo")
	if err != nil {
		t.Fatalf("township->anchor: %v", err)
	}
	if back.Price != 1500 {
		t.Errorf("Chicuacalacuala->Maputo = %v, want 1500", back.Price)
	}

	// Townships are served from the anchor only, never cross-corridor.
	if _, err := cat.RouteFor("Chicuacalacuala", "Xai-Xai"); !errors.Is(err, domain.ErrRouteNotFound) {
		t.Errorf("township cross route: got %v, want ErrRouteNotFound", err)
	}
}

func TestCatalogRouteByID(t *testing.T) {
	cat := domain.NewDefaultCatalog()

	r, err := cat.RouteByID("maputo_xai-xai")
	if err != nil {
		t.Fatalf("RouteByID: %v", err)
	}
	if r.Origin != "Maputo" || r.Destination != "Xai-Xai" || r.Price != 500 {
		t.Errorf("unexpected route %+v", r)
	}

	if _, err := cat.RouteByID("no-such-route"); !errors.Is(err, domain.ErrRouteNotFound) {
		t.Errorf("missing id: got %v, want ErrRouteNotFound", err)
	}
}
