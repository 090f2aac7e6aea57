package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/adapter/queue"
	"github.com/chargehub/chargehub/internal/clock"
	"github.com/chargehub/chargehub/internal/domain"
	"github.com/chargehub/chargehub/internal/mocks"
)

func newTestNotifier(t *testing.T, cfg Config) (*Notifier, *mocks.MockMessageQueue, *clock.Fake) {
	t.Helper()
	bus := mocks.NewMockMessageQueue()
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	n, err := NewNotifier(cfg, clk, rand.New(rand.NewSource(1)), bus, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("NewNotifier failed: %v", err)
	}
	return n, bus, clk
}

func TestNotificationListEvictsOldest(t *testing.T) {
	n, _, _ := newTestNotifier(t, DefaultConfig())

	for i := 0; i < domain.MaxNotifications+5; i++ {
		n.Add(fmt.Sprintf("title-%d", i), "message", domain.NotificationInfo)
	}

	list := n.Notifications()
	if len(list) != domain.MaxNotifications {
		t.Fatalf("Expected list capped at %d, got %d", domain.MaxNotifications, len(list))
	}
	if list[0].Title != fmt.Sprintf("title-%d", domain.MaxNotifications+4) {
		t.Errorf("Expected newest first, got %q", list[0].Title)
	}
	if list[len(list)-1].Title != "title-5" {
		t.Errorf("Expected the oldest five evicted, last is %q", list[len(list)-1].Title)
	}
	for _, notification := range list {
		if notification.Read {
			t.Error("New notifications must start unread")
		}
	}
	if n.LastUpdate() == nil {
		t.Error("Expected LastUpdate after adding notifications")
	}
}

func TestMarkRead(t *testing.T) {
	n, _, _ := newTestNotifier(t, DefaultConfig())

	added := n.Add("title", "message", domain.NotificationInfo)
	if !n.MarkRead(added.ID) {
		t.Error("Expected MarkRead to find the notification")
	}
	if !n.Notifications()[0].Read {
		t.Error("Expected the notification to be marked read")
	}
	if n.MarkRead("no-such-id") {
		t.Error("Expected MarkRead to report a missing id")
	}
}

func TestClearAll(t *testing.T) {
	n, _, _ := newTestNotifier(t, DefaultConfig())

	n.Add("title", "message", domain.NotificationInfo)
	n.ClearAll()
	if len(n.Notifications()) != 0 {
		t.Error("Expected an empty list after ClearAll")
	}
}

func TestSessionCompletedEventNotifies(t *testing.T) {
	n, bus, _ := newTestNotifier(t, DefaultConfig())

	session := domain.ChargingSession{
		ID:              "s-1",
		ChargerName:     "Kamppi Charging Station",
		Status:          domain.SessionStatusCompleted,
		EnergyDelivered: 12.5,
	}
	data, _ := json.Marshal(session)
	if err := bus.Deliver(queue.SubjectSessionCompleted, data); err != nil {
		t.Fatalf("Deliver failed: %v", err)
	}

	list := n.Notifications()
	if len(list) != 1 {
		t.Fatalf("Expected one notification, got %d", len(list))
	}
	if list[0].Type != domain.NotificationSuccess {
		t.Errorf("Expected a success notification, got %s", list[0].Type)
	}
	if !strings.Contains(list[0].Message, "Kamppi Charging Station") {
		t.Errorf("Expected the charger name in the message, got %q", list[0].Message)
	}
	if !strings.Contains(list[0].Message, "12.5") {
		t.Errorf("Expected the delivered energy in the message, got %q", list[0].Message)
	}
}

func TestSessionFailedEventNotifies(t *testing.T) {
	n, bus, _ := newTestNotifier(t, DefaultConfig())

	session := domain.ChargingSession{
		ID:          "s-1",
		ChargerName: "Kamppi Charging Station",
		Status:      domain.SessionStatusError,
	}
	data, _ := json.Marshal(session)
	if err := bus.Deliver(queue.SubjectSessionFailed, data); err != nil {
		t.Fatalf("Deliver failed: %v", err)
	}

	list := n.Notifications()
	if len(list) != 1 {
		t.Fatalf("Expected one notification, got %d", len(list))
	}
	if list[0].Type != domain.NotificationError {
		t.Errorf("Expected an error notification, got %s", list[0].Type)
	}
	if !strings.Contains(list[0].Message, "Unknown error") {
		t.Errorf("Expected a fallback error message, got %q", list[0].Message)
	}
}

func TestPerturbKeepsAvailabilityInBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PerturbChance = 1
	n, _, _ := newTestNotifier(t, cfg)

	chargers := []domain.ChargerWithDistance{
		{Charger: domain.Charger{ID: "a", Name: "A", Available: 0, Total: 4, Status: domain.ChargerStatusBusy}},
		{Charger: domain.Charger{ID: "b", Name: "B", Available: 4, Total: 4, Status: domain.ChargerStatusAvailable}},
		{Charger: domain.Charger{ID: "c", Name: "C", Available: 2, Total: 4, Status: domain.ChargerStatusAvailable}},
	}

	for round := 0; round < 50; round++ {
		chargers = n.PerturbChargers(chargers)
		for _, charger := range chargers {
			if charger.Available < 0 || charger.Available > charger.Total {
				t.Fatalf("Round %d: availability %d outside [0, %d]", round, charger.Available, charger.Total)
			}
			if want := domain.StatusForAvailability(charger.Available); charger.Status != want {
				t.Fatalf("Round %d: status %s inconsistent with availability %d", round, charger.Status, charger.Available)
			}
		}
	}
}

func TestPerturbZeroChanceIsIdentity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PerturbChance = 0
	n, _, _ := newTestNotifier(t, cfg)

	chargers := []domain.ChargerWithDistance{
		{Charger: domain.Charger{ID: "a", Name: "A", Available: 2, Total: 4, Status: domain.ChargerStatusAvailable}},
	}

	out := n.PerturbChargers(chargers)
	if out[0].Available != 2 || out[0].Status != domain.ChargerStatusAvailable {
		t.Error("Expected no change with perturbation disabled")
	}
	if len(n.Notifications()) != 0 {
		t.Error("Expected no notifications with perturbation disabled")
	}
}

func TestPerturbNotifiesWhenChargerFreesUp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PerturbChance = 1
	n, _, _ := newTestNotifier(t, cfg)

	chargers := []domain.ChargerWithDistance{
		{Charger: domain.Charger{ID: "a", Name: "Ruoholahti Hub", Available: 0, Total: 4, Status: domain.ChargerStatusBusy}},
	}

	// The step direction is random; with every round eligible, the charger
	// frees up within a handful of rounds.
	freed := false
	for round := 0; round < 100 && !freed; round++ {
		chargers = n.PerturbChargers(chargers)
		freed = chargers[0].Available > 0
	}
	if !freed {
		t.Fatal("Charger never freed up across 100 perturbation rounds")
	}

	list := n.Notifications()
	if len(list) == 0 {
		t.Fatal("Expected a notification for the freed-up charger")
	}
	if list[0].Type != domain.NotificationSuccess {
		t.Errorf("Expected a success notification, got %s", list[0].Type)
	}
	if !strings.Contains(list[0].Message, "Ruoholahti Hub") {
		t.Errorf("Expected the charger name in the message, got %q", list[0].Message)
	}
}

func TestHeartbeatDisconnectAndRecover(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisconnectChance = 1
	n, _, clk := newTestNotifier(t, cfg)

	if !n.Connected() {
		t.Fatal("Expected the connection flag to start true")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go n.Run(ctx)

	clk.Advance(cfg.HeartbeatInterval)
	if !waitFor(func() bool { return !n.Connected() }) {
		t.Fatal("Expected the heartbeat to drop the connection")
	}

	// Stop the heartbeat so only the pending recovery remains, then walk
	// virtual time forward until it fires.
	cancel()
	for i := 0; i < 100 && !n.Connected(); i++ {
		clk.Advance(cfg.ReconnectDelay)
		time.Sleep(2 * time.Millisecond)
	}
	if !n.Connected() {
		t.Fatal("Expected the connection to recover")
	}
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(2 * time.Millisecond)
	}
	return cond()
}
