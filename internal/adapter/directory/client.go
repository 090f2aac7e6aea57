package directory

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/clock"
	"github.com/chargehub/chargehub/internal/domain"
)

// ErrFetchFailed is the generic simulated-transport failure. Callers must
// treat it as distinct from an empty result list.
var ErrFetchFailed = errors.New("charger fetch failed")

// ClientConfig tunes the simulated upstream round-trip.
type ClientConfig struct {
	FetchDelay  time.Duration // simulated network latency
	FailureRate float64       // probability in [0,1] of a transport failure
}

// Client models the upstream charger source: a fixed candidate set behind a
// simulated network delay, a random failure chance, and a circuit breaker
// so a run of simulated failures opens the circuit the way a real upstream
// outage would.
type Client struct {
	cfg     ClientConfig
	clock   clock.Clock
	rng     *rand.Rand
	breaker *gobreaker.CircuitBreaker
	log     *zap.Logger
}

func NewClient(cfg ClientConfig, clk clock.Clock, rng *rand.Rand, log *zap.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "charger-source",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("Charger source circuit breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Client{cfg: cfg, clock: clk, rng: rng, breaker: cb, log: log}
}

// Fetch returns the candidate charger set for a coordinate. The coordinate
// only selects the fixture set; distance math belongs to the caller.
func (c *Client) Fetch(ctx context.Context, lat, lng float64) ([]domain.Charger, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		c.clock.Sleep(c.cfg.FetchDelay)
		if c.cfg.FailureRate > 0 && c.rng.Float64() < c.cfg.FailureRate {
			return nil, ErrFetchFailed
		}
		return MockChargers(), nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.Warn("Charger source circuit open", zap.Error(err))
			return nil, ErrFetchFailed
		}
		return nil, err
	}
	return result.([]domain.Charger), nil
}
