package directory

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/domain"
	"github.com/chargehub/chargehub/internal/mocks"
)

// stubSource returns a canned candidate set or a canned error.
type stubSource struct {
	chargers []domain.Charger
	err      error
}

func (s *stubSource) Fetch(ctx context.Context, lat, lng float64) ([]domain.Charger, error) {
	return s.chargers, s.err
}

// Query origin for all tests: central Helsinki.
const (
	originLat = 60.1699
	originLon = 24.9384
)

func testChargers() []domain.Charger {
	return []domain.Charger{
		// ~15 km out: beyond the default radius.
		{ID: "vantaa", Name: "Vantaa", Network: "Fortum", Latitude: 60.2934, Longitude: 25.0378},
		// ~3 km out.
		{ID: "pasila", Name: "Pasila", Network: "Helen", Latitude: 60.1988, Longitude: 24.9339},
		// A few hundred metres out.
		{ID: "kamppi", Name: "Kamppi", Network: "Virta", Latitude: 60.1695, Longitude: 24.9354},
	}
}

func TestLookupSortsAscendingByDistance(t *testing.T) {
	svc := NewService(&stubSource{chargers: testChargers()}, &mocks.MockAccountService{}, zap.NewNop())

	result, err := svc.Lookup(context.Background(), originLat, originLon, 200)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("Expected all 3 chargers within 200 km, got %d", len(result))
	}

	for i := 1; i < len(result); i++ {
		if result[i].Distance < result[i-1].Distance {
			t.Fatalf("Result not sorted ascending: %v km before %v km",
				result[i-1].Distance, result[i].Distance)
		}
	}
	if result[0].ID != "kamppi" || result[2].ID != "vantaa" {
		t.Errorf("Expected kamppi first and vantaa last, got %s .. %s", result[0].ID, result[2].ID)
	}
	if result[0].Distance <= 0 {
		t.Error("Expected a positive distance annotation")
	}
}

func TestLookupAppliesDefaultRadius(t *testing.T) {
	svc := NewService(&stubSource{chargers: testChargers()}, &mocks.MockAccountService{}, zap.NewNop())

	// radiusKm <= 0 falls back to the 10 km default, which excludes Vantaa.
	result, err := svc.Lookup(context.Background(), originLat, originLon, 0)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected 2 chargers within the default radius, got %d", len(result))
	}
	for _, charger := range result {
		if charger.ID == "vantaa" {
			t.Error("Charger beyond the default radius must be filtered out")
		}
		if charger.Distance > DefaultRadiusKm {
			t.Errorf("Charger %s at %v km exceeds the default radius", charger.ID, charger.Distance)
		}
	}
}

func TestLookupRadiusFilter(t *testing.T) {
	svc := NewService(&stubSource{chargers: testChargers()}, &mocks.MockAccountService{}, zap.NewNop())

	result, err := svc.Lookup(context.Background(), originLat, originLon, 1)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(result) != 1 || result[0].ID != "kamppi" {
		t.Fatalf("Expected only the closest charger within 1 km, got %d results", len(result))
	}
}

func TestLookupJoinsAccountConnected(t *testing.T) {
	accounts := &mocks.MockAccountService{
		IsConnectedFunc: func(ctx context.Context, networkName string) bool {
			return networkName == "Virta"
		},
	}
	svc := NewService(&stubSource{chargers: testChargers()}, accounts, zap.NewNop())

	result, err := svc.Lookup(context.Background(), originLat, originLon, 200)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	for _, charger := range result {
		want := charger.Network == "Virta"
		if charger.AccountConnected != want {
			t.Errorf("Charger %s (network %s): accountConnected=%v, want %v",
				charger.ID, charger.Network, charger.AccountConnected, want)
		}
	}
}

func TestLookupEmptyResultIsNotAnError(t *testing.T) {
	svc := NewService(&stubSource{chargers: nil}, &mocks.MockAccountService{}, zap.NewNop())

	result, err := svc.Lookup(context.Background(), originLat, originLon, 10)
	if err != nil {
		t.Fatalf("Empty candidate set must not be an error, got %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("Expected an empty result, got %d", len(result))
	}
}

func TestLookupPropagatesFetchError(t *testing.T) {
	fetchErr := errors.New("charger fetch failed")
	svc := NewService(&stubSource{err: fetchErr}, &mocks.MockAccountService{}, zap.NewNop())

	result, err := svc.Lookup(context.Background(), originLat, originLon, 10)
	if !errors.Is(err, fetchErr) {
		t.Fatalf("Expected the source error to propagate, got %v", err)
	}
	if result != nil {
		t.Error("Expected no result alongside the error")
	}
}
