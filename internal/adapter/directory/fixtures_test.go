package directory

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/clock"
)

func TestClassifyArea(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng float64
		want     Area
	}{
		{"helsinki centre", 60.1699, 24.9384, AreaHelsinki},
		{"hyvinkää inside widened helsinki box", 60.6105, 24.87, AreaHelsinki},
		{"hämeenlinna", 60.9967, 24.4642, AreaHameenlinna},
		{"longitude on helsinki box edge falls through", 60.50, 24.00, AreaFallback},
		{"north of all boxes", 65.0, 25.5, AreaFallback},
		{"hämeenlinna latitude but wrong longitude", 61.0, 25.0, AreaFallback},
	}

	for _, tc := range cases {
		if got := ClassifyArea(tc.lat, tc.lng); got != tc.want {
			t.Errorf("%s: ClassifyArea(%v, %v) = %v, want %v", tc.name, tc.lat, tc.lng, got, tc.want)
		}
	}
}

func TestFixtureStations_FallbackSyntheticPair(t *testing.T) {
	// (60.50, 24.00) is outside every bounding box.
	stations := FixtureStations(60.50, 24.00)

	if len(stations) != 2 {
		t.Fatalf("expected the 2-element synthetic fallback set, got %d", len(stations))
	}
	if stations[0].AddressInfo.Latitude != 60.50 || stations[0].AddressInfo.Longitude != 24.00 {
		t.Errorf("expected first synthetic point at the query coordinate, got %v/%v",
			stations[0].AddressInfo.Latitude, stations[0].AddressInfo.Longitude)
	}
	if stations[1].AddressInfo.Latitude != 60.501 || stations[1].AddressInfo.Longitude != 24.001 {
		t.Errorf("expected second synthetic point offset by +0.001/+0.001, got %v/%v",
			stations[1].AddressInfo.Latitude, stations[1].AddressInfo.Longitude)
	}
}

func TestFixtureStations_HelsinkiSet(t *testing.T) {
	stations := FixtureStations(60.1699, 24.9384)
	if len(stations) != 4 {
		t.Fatalf("expected 4 Helsinki fixtures, got %d", len(stations))
	}
	if stations[0].ID != 101 {
		t.Errorf("expected Helsinki set to start at ID 101, got %d", stations[0].ID)
	}
}

func TestClient_FetchSucceeds(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	client := NewClient(ClientConfig{FetchDelay: 0}, clk, rand.New(rand.NewSource(1)), logger)

	chargers, err := client.Fetch(context.Background(), 60.17, 24.94)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(chargers) != 5 {
		t.Errorf("expected 5 mock chargers, got %d", len(chargers))
	}
}

func TestClient_FetchFailureIsGeneric(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	client := NewClient(ClientConfig{FailureRate: 1}, clk, rand.New(rand.NewSource(1)), logger)

	_, err := client.Fetch(context.Background(), 60.17, 24.94)
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
}

func TestClient_BreakerOpensAfterFailures(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	client := NewClient(ClientConfig{FailureRate: 1}, clk, rand.New(rand.NewSource(1)), logger)

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		if _, err := client.Fetch(ctx, 60.17, 24.94); !errors.Is(err, ErrFetchFailed) {
			t.Fatalf("call %d: expected ErrFetchFailed, got %v", i, err)
		}
	}
}
