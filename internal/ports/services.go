package ports

import (
	"context"
	"time"

	"github.com/chargehub/chargehub/internal/domain"
)

// DirectoryService resolves a location to nearby chargers, annotated with
// distance and sorted ascending. An empty result is not an error; a
// simulated transport failure is.
type DirectoryService interface {
	Lookup(ctx context.Context, lat, lon, radiusKm float64) ([]domain.ChargerWithDistance, error)
}

// AccountService tracks simulated links to charging networks. Every
// mutation returns the full account set after the change.
type AccountService interface {
	List(ctx context.Context) ([]domain.NetworkAccount, error)
	Connect(ctx context.Context, networkName, email string) ([]domain.NetworkAccount, error)
	Disconnect(ctx context.Context, networkName string) ([]domain.NetworkAccount, error)
	IsConnected(ctx context.Context, networkName string) bool
}

// StartRequest carries the charger selection for a new session. The
// charger fields are copied by value into the session.
type StartRequest struct {
	ChargerID   string
	ChargerName string
	Network     string
	MaxEnergy   float64    // kWh target, 0 = none
	TargetTime  *time.Time // accepted and stored, not enforced
}

// SessionService owns the lifecycle of at most one active charging session.
type SessionService interface {
	Start(ctx context.Context, req StartRequest) (*domain.ChargingSession, error)
	Stop(ctx context.Context, sessionID string) (*domain.ChargingSession, error)
	Active(ctx context.Context) (*domain.ChargingSession, error)
	History(ctx context.Context) ([]domain.ChargingSession, error)
}

// NotifierService is the simulated live-update channel.
type NotifierService interface {
	Notifications() []domain.Notification
	MarkRead(id string) bool
	ClearAll()
	Connected() bool
	LastUpdate() *time.Time
	PerturbChargers(chargers []domain.ChargerWithDistance) []domain.ChargerWithDistance
	Watch(chargers []domain.ChargerWithDistance)
}

// AuthService is the local, storage-backed stand-in for a real identity
// provider.
type AuthService interface {
	SignUp(ctx context.Context, email, password, name string) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (string, *domain.User, error) // token, user
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, name, email string) (*domain.User, error)
}
