package account

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/clock"
	"github.com/chargehub/chargehub/internal/domain"
	"github.com/chargehub/chargehub/internal/mocks"
	"github.com/chargehub/chargehub/internal/ports"
)

func newTestService() ports.AccountService {
	accounts := domain.DefaultAccounts()
	repo := &mocks.MockAccountRepository{
		LoadFunc: func(ctx context.Context) ([]domain.NetworkAccount, error) {
			out := make([]domain.NetworkAccount, len(accounts))
			copy(out, accounts)
			return out, nil
		},
		StoreFunc: func(ctx context.Context, updated []domain.NetworkAccount) error {
			accounts = updated
			return nil
		},
	}
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewService(Config{LinkDelay: 0}, repo, clk, zap.NewNop())
}

func TestConnectNetwork(t *testing.T) {
	svc := newTestService()

	accounts, err := svc.Connect(context.Background(), "Virta", "user@example.com")
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if len(accounts) != 6 {
		t.Fatalf("Expected the full set of 6 networks, got %d", len(accounts))
	}

	for _, account := range accounts {
		if account.Name == "Virta" {
			if account.Status != domain.AccountStatusConnected {
				t.Errorf("Expected Virta connected, got %s", account.Status)
			}
			if account.AccountEmail != "user@example.com" {
				t.Errorf("Expected stored email, got %q", account.AccountEmail)
			}
			if account.LastConnected == nil {
				t.Error("Expected a last-connected timestamp")
			}
			continue
		}
		if account.Status != domain.AccountStatusNotConnected {
			t.Errorf("Network %s must be untouched, got status %s", account.Name, account.Status)
		}
	}

	if !svc.IsConnected(context.Background(), "Virta") {
		t.Error("IsConnected must report the new link")
	}
	if svc.IsConnected(context.Background(), "Fortum") {
		t.Error("IsConnected must not report an unlinked network")
	}
}

func TestReconnectOverwritesEmail(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Connect(context.Background(), "Helen", "old@example.com"); err != nil {
		t.Fatalf("First connect failed: %v", err)
	}
	accounts, err := svc.Connect(context.Background(), "Helen", "new@example.com")
	if err != nil {
		t.Fatalf("Reconnect failed: %v", err)
	}

	for _, account := range accounts {
		if account.Name == "Helen" && account.AccountEmail != "new@example.com" {
			t.Errorf("Expected email overwritten on reconnect, got %q", account.AccountEmail)
		}
	}
}

func TestDisconnectNetwork(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Connect(context.Background(), "Virta", "user@example.com"); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	accounts, err := svc.Disconnect(context.Background(), "Virta")
	if err != nil {
		t.Fatalf("Disconnect failed: %v", err)
	}

	if len(accounts) != 6 {
		t.Fatalf("Disconnect must retain the record, got %d networks", len(accounts))
	}
	for _, account := range accounts {
		if account.Name == "Virta" {
			if account.Status != domain.AccountStatusNotConnected {
				t.Errorf("Expected Virta not_connected, got %s", account.Status)
			}
			if account.AccountEmail != "" || account.LastConnected != nil {
				t.Error("Disconnect must clear the link details")
			}
		}
	}
	if svc.IsConnected(context.Background(), "Virta") {
		t.Error("IsConnected must report the cleared link")
	}
}

func TestUnknownNetwork(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Connect(context.Background(), "Tesla", "user@example.com"); err != ErrUnknownNetwork {
		t.Errorf("Expected ErrUnknownNetwork on connect, got %v", err)
	}
	if _, err := svc.Disconnect(context.Background(), "Tesla"); err != ErrUnknownNetwork {
		t.Errorf("Expected ErrUnknownNetwork on disconnect, got %v", err)
	}
	if svc.IsConnected(context.Background(), "Tesla") {
		t.Error("Unknown network must never read as connected")
	}
}
