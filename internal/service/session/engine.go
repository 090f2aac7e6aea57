// Package session owns the lifecycle of at most one active charging
// session: simulated start-up handshake, periodic progress projection,
// target-based auto-completion, and simulated stop.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/adapter/queue"
	"github.com/chargehub/chargehub/internal/clock"
	"github.com/chargehub/chargehub/internal/domain"
	"github.com/chargehub/chargehub/internal/observability/telemetry"
	"github.com/chargehub/chargehub/internal/ports"
)

var (
	// ErrSessionActive rejects a Start while the active slot is occupied.
	ErrSessionActive = errors.New("a charging session is already in progress")

	// ErrSessionNotFound means the requested id is not in the active slot.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionNotActive means the slot session has not finished starting.
	ErrSessionNotActive = errors.New("session is not active")
)

const startFailureMessage = "Failed to start charging. Check the connection to the charging point."

// Config tunes the simulated session lifecycle.
type Config struct {
	StartDelay       time.Duration // simulated handshake with the network
	StopDelay        time.Duration // simulated shutdown
	ProgressInterval time.Duration // progress recomputation period
	FailureRate      float64       // probability a start attempt fails
	MinPowerKW       float64       // lower bound of the simulated power band
	MaxPowerKW       float64       // upper bound (exclusive)
	PricePerKWh      float64
	DefaultEnergyCap float64 // kWh cap applied when no target is set
}

func DefaultConfig() Config {
	return Config{
		StartDelay:       2 * time.Second,
		StopDelay:        1500 * time.Millisecond,
		ProgressInterval: 5 * time.Second,
		FailureRate:      0.1,
		MinPowerKW:       20,
		MaxPowerKW:       70,
		PricePerKWh:      0.45,
		DefaultEnergyCap: 100,
	}
}

// Engine is the session state machine. All transitions happen under one
// mutex, so Start, Stop, and the progress loop never interleave on the
// shared slot; simulated delays run outside it and always resolve.
type Engine struct {
	cfg   Config
	repo  ports.SessionRepository
	bus   queue.MessageQueue
	clock clock.Clock
	rng   *rand.Rand
	log   *zap.Logger

	mu sync.Mutex
}

func NewEngine(cfg Config, repo ports.SessionRepository, bus queue.MessageQueue, clk clock.Clock, rng *rand.Rand, log *zap.Logger) *Engine {
	return &Engine{
		cfg:   cfg,
		repo:  repo,
		bus:   bus,
		clock: clk,
		rng:   rng,
		log:   log,
	}
}

// Start creates a session in the starting state, waits out the simulated
// handshake, and resolves it to active or to the terminal error state. A
// Start while the slot is occupied is rejected; the caller must stop the
// running session first. A start failure is reported through the returned
// session's status, not through the error value, and is never retried
// automatically.
func (e *Engine) Start(ctx context.Context, req ports.StartRequest) (*domain.ChargingSession, error) {
	if req.ChargerID == "" {
		return nil, errors.New("charger id is required")
	}

	e.mu.Lock()
	active, err := e.repo.Active(ctx)
	if err != nil {
		e.mu.Unlock()
		return nil, err
	}
	if active != nil {
		e.mu.Unlock()
		return nil, ErrSessionActive
	}

	session := &domain.ChargingSession{
		ID:          uuid.New().String(),
		ChargerID:   req.ChargerID,
		ChargerName: req.ChargerName,
		Network:     req.Network,
		StartTime:   e.clock.Now(),
		Status:      domain.SessionStatusStarting,
		MaxEnergy:   req.MaxEnergy,
		TargetTime:  req.TargetTime,
	}
	if err := e.repo.Save(ctx, session); err != nil {
		e.mu.Unlock()
		return nil, err
	}
	e.mu.Unlock()

	e.log.Info("Session starting",
		zap.String("session_id", session.ID),
		zap.String("charger_id", session.ChargerID),
	)

	// Simulated handshake with the charging network. Runs to completion
	// unconditionally; there is no cancellation or timeout.
	e.clock.Sleep(e.cfg.StartDelay)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.rng.Float64() >= e.cfg.FailureRate {
		session.Status = domain.SessionStatusActive
		session.CurrentPower = e.cfg.MinPowerKW + math.Floor(e.rng.Float64()*(e.cfg.MaxPowerKW-e.cfg.MinPowerKW))
		telemetry.ActiveChargingSessions.Set(1)
		telemetry.SessionsStartedTotal.WithLabelValues("success").Inc()
		e.log.Info("Session active",
			zap.String("session_id", session.ID),
			zap.Float64("power_kw", session.CurrentPower),
		)
	} else {
		session.Status = domain.SessionStatusError
		session.ErrorMessage = startFailureMessage
		telemetry.SessionsStartedTotal.WithLabelValues("failure").Inc()
		e.log.Warn("Session start failed", zap.String("session_id", session.ID))
	}

	if err := e.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	if session.Status == domain.SessionStatusError {
		e.publish(queue.SubjectSessionFailed, session)
	}
	return session, nil
}

// Stop transitions the active session through stopping to completed. The
// next progress tick observes the new status and is a no-op.
func (e *Engine) Stop(ctx context.Context, sessionID string) (*domain.ChargingSession, error) {
	e.mu.Lock()
	session, err := e.repo.Active(ctx)
	if err != nil {
		e.mu.Unlock()
		return nil, err
	}
	if session == nil || session.ID != sessionID {
		e.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if session.Status != domain.SessionStatusActive {
		e.mu.Unlock()
		return nil, ErrSessionNotActive
	}

	session.Status = domain.SessionStatusStopping
	if err := e.repo.Save(ctx, session); err != nil {
		e.mu.Unlock()
		return nil, err
	}
	e.mu.Unlock()

	e.log.Info("Session stopping", zap.String("session_id", session.ID))

	// Simulated shutdown. Always resolves.
	e.clock.Sleep(e.cfg.StopDelay)

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	session.Status = domain.SessionStatusCompleted
	session.EndTime = &now
	if err := e.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	telemetry.ActiveChargingSessions.Set(0)
	e.publish(queue.SubjectSessionCompleted, session)

	e.log.Info("Session completed",
		zap.String("session_id", session.ID),
		zap.Float64("energy_kwh", session.EnergyDelivered),
	)
	return session, nil
}

// Progress recomputes the active session's energy and cost projection from
// elapsed time, auto-completing when the energy target is reached. Ticks
// that observe a non-active slot are no-ops, so terminal states are
// idempotent under further progress calls.
func (e *Engine) Progress(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, err := e.repo.Active(ctx)
	if err != nil {
		return err
	}
	if session == nil || session.Status != domain.SessionStatusActive {
		return nil
	}

	elapsedHours := e.clock.Now().Sub(session.StartTime).Hours()

	capKWh := e.cfg.DefaultEnergyCap
	if session.MaxEnergy > 0 {
		capKWh = session.MaxEnergy
	}
	energy := math.Min(session.CurrentPower*elapsedHours, capKWh)
	energy = round2(energy)

	telemetry.EnergyDeliveredTotal.Add(math.Max(0, energy-session.EnergyDelivered))

	session.EnergyDelivered = energy
	session.EstimatedCost = round2(energy * e.cfg.PricePerKWh)

	if session.MaxEnergy > 0 && session.EnergyDelivered >= session.MaxEnergy {
		now := e.clock.Now()
		session.Status = domain.SessionStatusCompleted
		session.EndTime = &now
		if err := e.repo.Save(ctx, session); err != nil {
			return err
		}
		telemetry.ActiveChargingSessions.Set(0)
		e.publish(queue.SubjectSessionCompleted, session)
		e.log.Info("Session reached energy target",
			zap.String("session_id", session.ID),
			zap.Float64("energy_kwh", session.EnergyDelivered),
		)
		return nil
	}

	return e.repo.Save(ctx, session)
}

// Active returns the session currently occupying the active slot, or nil.
func (e *Engine) Active(ctx context.Context) (*domain.ChargingSession, error) {
	return e.repo.Active(ctx)
}

// History returns the retained session history, newest first.
func (e *Engine) History(ctx context.Context) ([]domain.ChargingSession, error) {
	return e.repo.History(ctx)
}

// Run drives the periodic progress recomputation until the context is
// cancelled. The tick period is independent of the availability
// perturbation timer; both observe shared state only under the engine
// mutex.
func (e *Engine) Run(ctx context.Context) {
	ticker := e.clock.NewTicker(e.cfg.ProgressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			if err := e.Progress(ctx); err != nil {
				e.log.Error("Progress recomputation failed", zap.Error(err))
			}
		}
	}
}

func (e *Engine) publish(subject string, session *domain.ChargingSession) {
	data, err := json.Marshal(session)
	if err != nil {
		e.log.Error("Failed to encode session event", zap.Error(err))
		return
	}
	if err := e.bus.Publish(subject, data); err != nil {
		e.log.Error("Failed to publish session event",
			zap.String("subject", subject), zap.Error(err))
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
