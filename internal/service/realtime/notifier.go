// Package realtime models a live-update channel without a real network: a
// heartbeat that cosmetically flips a connected flag, random perturbation
// of charger availability, and notifications for charger and session state
// changes.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/adapter/queue"
	"github.com/chargehub/chargehub/internal/clock"
	"github.com/chargehub/chargehub/internal/domain"
	"github.com/chargehub/chargehub/internal/observability/telemetry"
)

type Config struct {
	HeartbeatInterval time.Duration // connected-flag check period
	DisconnectChance  float64       // probability of a flip per heartbeat
	ReconnectDelay    time.Duration // time the flag stays false
	RefreshInterval   time.Duration // watched-charger perturbation period
	PerturbChance     float64       // per-charger probability of a +-1 change
}

func DefaultConfig() Config {
	return Config{
		HeartbeatInterval: 30 * time.Second,
		DisconnectChance:  0.05,
		ReconnectDelay:    2 * time.Second,
		RefreshInterval:   15 * time.Second,
		PerturbChance:     0.1,
	}
}

// Broadcaster pushes an encoded update to subscribed clients.
type Broadcaster interface {
	Broadcast(data []byte)
}

// Notifier keeps the bounded notification list and the simulated
// connection state. Session terminal transitions arrive over the event
// bus, so each is observed exactly once regardless of which engine path
// (stop, auto-complete, start failure) produced it.
type Notifier struct {
	cfg   Config
	clock clock.Clock
	hub   Broadcaster
	log   *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand

	mu            sync.Mutex
	notifications []domain.Notification
	connected     bool
	lastUpdate    *time.Time
	watched       []domain.ChargerWithDistance
}

func NewNotifier(cfg Config, clk clock.Clock, rng *rand.Rand, bus queue.MessageQueue, hub Broadcaster, log *zap.Logger) (*Notifier, error) {
	n := &Notifier{
		cfg:       cfg,
		clock:     clk,
		rng:       rng,
		hub:       hub,
		log:       log,
		connected: true,
	}

	if err := bus.Subscribe(queue.SubjectSessionCompleted, n.onSessionCompleted); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(queue.SubjectSessionFailed, n.onSessionFailed); err != nil {
		return nil, err
	}
	return n, nil
}

// Add appends a notification, evicting the oldest entry beyond the
// retention bound. Newest first; every notification starts unread.
func (n *Notifier) Add(title, message string, typ domain.NotificationType) domain.Notification {
	notification := domain.Notification{
		ID:        uuid.New().String(),
		Title:     title,
		Message:   message,
		Type:      typ,
		Timestamp: n.clock.Now(),
	}

	n.mu.Lock()
	n.notifications = append([]domain.Notification{notification}, n.notifications...)
	if len(n.notifications) > domain.MaxNotifications {
		n.notifications = n.notifications[:domain.MaxNotifications]
	}
	now := notification.Timestamp
	n.lastUpdate = &now
	n.mu.Unlock()

	telemetry.NotificationsEmittedTotal.WithLabelValues(string(typ)).Inc()
	n.broadcast("notification", notification)
	return notification
}

// Notifications returns a copy of the list, newest first.
func (n *Notifier) Notifications() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]domain.Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}

// MarkRead marks one notification read; it reports whether the id existed.
func (n *Notifier) MarkRead(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.notifications {
		if n.notifications[i].ID == id {
			n.notifications[i].Read = true
			return true
		}
	}
	return false
}

func (n *Notifier) ClearAll() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = nil
}

// Connected reports the cosmetic live-connection flag. Nothing consults it
// for correctness.
func (n *Notifier) Connected() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.connected
}

func (n *Notifier) LastUpdate() *time.Time {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.lastUpdate
}

// PerturbChargers gives each charger an independent chance of a one-step
// availability change, clamped to [0, total], and recomputes the derived
// status. A transition from none available to some available emits a
// success notification. The input is the caller's in-memory copy; nothing
// is written back to the directory.
func (n *Notifier) PerturbChargers(chargers []domain.ChargerWithDistance) []domain.ChargerWithDistance {
	out := make([]domain.ChargerWithDistance, len(chargers))
	copy(out, chargers)

	for i := range out {
		if n.chance() >= n.cfg.PerturbChance {
			continue
		}

		delta := -1
		if n.chance() > 0.5 {
			delta = 1
		}

		oldAvailable := out[i].Available
		newAvailable := oldAvailable + delta
		if newAvailable < 0 {
			newAvailable = 0
		}
		if newAvailable > out[i].Total {
			newAvailable = out[i].Total
		}
		if newAvailable == oldAvailable {
			continue
		}

		out[i].Available = newAvailable
		out[i].Status = domain.StatusForAvailability(newAvailable)

		if oldAvailable == 0 && newAvailable > 0 {
			n.Add(
				"Charger available",
				fmt.Sprintf("%s - %d charging points free", out[i].Name, newAvailable),
				domain.NotificationSuccess,
			)
		}
	}
	return out
}

// Watch replaces the charger set the refresh ticker perturbs. The nearby
// lookup handler calls this after every query so live updates track the
// user's last search.
func (n *Notifier) Watch(chargers []domain.ChargerWithDistance) {
	watched := make([]domain.ChargerWithDistance, len(chargers))
	copy(watched, chargers)

	n.mu.Lock()
	n.watched = watched
	n.mu.Unlock()
}

// Run drives the heartbeat and the charger refresh until the context is
// cancelled.
func (n *Notifier) Run(ctx context.Context) {
	heartbeat := n.clock.NewTicker(n.cfg.HeartbeatInterval)
	defer heartbeat.Stop()
	refresh := n.clock.NewTicker(n.cfg.RefreshInterval)
	defer refresh.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C():
			n.heartbeat()
		case <-refresh.C():
			n.refresh()
		}
	}
}

// refresh perturbs the watched charger set and pushes the result to
// realtime clients.
func (n *Notifier) refresh() {
	n.mu.Lock()
	watched := n.watched
	n.mu.Unlock()
	if len(watched) == 0 {
		return
	}

	updated := n.PerturbChargers(watched)

	n.mu.Lock()
	n.watched = updated
	n.mu.Unlock()

	n.broadcast("chargers", updated)
}

// heartbeat randomly drops the simulated connection, recovering it after a
// fixed short delay.
func (n *Notifier) heartbeat() {
	if n.chance() >= n.cfg.DisconnectChance {
		return
	}

	n.setConnected(false)
	go func() {
		n.clock.Sleep(n.cfg.ReconnectDelay)
		n.setConnected(true)
	}()
}

// chance draws from the shared source; handlers and the run loop may draw
// concurrently.
func (n *Notifier) chance() float64 {
	n.rngMu.Lock()
	defer n.rngMu.Unlock()
	return n.rng.Float64()
}

func (n *Notifier) setConnected(connected bool) {
	n.mu.Lock()
	n.connected = connected
	n.mu.Unlock()

	n.log.Debug("Realtime connection state", zap.Bool("connected", connected))
	n.broadcast("network_status", map[string]bool{"connected": connected})
}

func (n *Notifier) onSessionCompleted(data []byte) error {
	var session domain.ChargingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return err
	}
	n.Add(
		"Charging complete",
		fmt.Sprintf("%s - %.1f kWh delivered", session.ChargerName, session.EnergyDelivered),
		domain.NotificationSuccess,
	)
	return nil
}

func (n *Notifier) onSessionFailed(data []byte) error {
	var session domain.ChargingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return err
	}
	message := session.ErrorMessage
	if message == "" {
		message = "Unknown error"
	}
	n.Add(
		"Charging error",
		fmt.Sprintf("%s - %s", session.ChargerName, message),
		domain.NotificationError,
	)
	return nil
}

type update struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

func (n *Notifier) broadcast(typ string, data interface{}) {
	if n.hub == nil {
		return
	}
	raw, err := json.Marshal(update{Type: typ, Data: data, Timestamp: n.clock.Now()})
	if err != nil {
		n.log.Error("Failed to encode realtime update", zap.Error(err))
		return
	}
	n.hub.Broadcast(raw)
}
