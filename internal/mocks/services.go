package mocks

import (
	"context"
	"time"

	"github.com/chargehub/chargehub/internal/domain"
	"github.com/chargehub/chargehub/internal/ports"
)

// MockDirectoryService is a mock implementation of DirectoryService
type MockDirectoryService struct {
	LookupFunc func(ctx context.Context, lat, lon, radiusKm float64) ([]domain.ChargerWithDistance, error)
}

func (m *MockDirectoryService) Lookup(ctx context.Context, lat, lon, radiusKm float64) ([]domain.ChargerWithDistance, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, lat, lon, radiusKm)
	}
	return []domain.ChargerWithDistance{}, nil
}

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	ListFunc        func(ctx context.Context) ([]domain.NetworkAccount, error)
	ConnectFunc     func(ctx context.Context, networkName, email string) ([]domain.NetworkAccount, error)
	DisconnectFunc  func(ctx context.Context, networkName string) ([]domain.NetworkAccount, error)
	IsConnectedFunc func(ctx context.Context, networkName string) bool
}

func (m *MockAccountService) List(ctx context.Context) ([]domain.NetworkAccount, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return domain.DefaultAccounts(), nil
}

func (m *MockAccountService) Connect(ctx context.Context, networkName, email string) ([]domain.NetworkAccount, error) {
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx, networkName, email)
	}
	return domain.DefaultAccounts(), nil
}

func (m *MockAccountService) Disconnect(ctx context.Context, networkName string) ([]domain.NetworkAccount, error) {
	if m.DisconnectFunc != nil {
		return m.DisconnectFunc(ctx, networkName)
	}
	return domain.DefaultAccounts(), nil
}

func (m *MockAccountService) IsConnected(ctx context.Context, networkName string) bool {
	if m.IsConnectedFunc != nil {
		return m.IsConnectedFunc(ctx, networkName)
	}
	return false
}

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	StartFunc   func(ctx context.Context, req ports.StartRequest) (*domain.ChargingSession, error)
	StopFunc    func(ctx context.Context, sessionID string) (*domain.ChargingSession, error)
	ActiveFunc  func(ctx context.Context) (*domain.ChargingSession, error)
	HistoryFunc func(ctx context.Context) ([]domain.ChargingSession, error)
}

func (m *MockSessionService) Start(ctx context.Context, req ports.StartRequest) (*domain.ChargingSession, error) {
	if m.StartFunc != nil {
		return m.StartFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockSessionService) Stop(ctx context.Context, sessionID string) (*domain.ChargingSession, error) {
	if m.StopFunc != nil {
		return m.StopFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *MockSessionService) Active(ctx context.Context) (*domain.ChargingSession, error) {
	if m.ActiveFunc != nil {
		return m.ActiveFunc(ctx)
	}
	return nil, nil
}

func (m *MockSessionService) History(ctx context.Context) ([]domain.ChargingSession, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx)
	}
	return []domain.ChargingSession{}, nil
}

// MockNotifierService is a mock implementation of NotifierService
type MockNotifierService struct {
	NotificationsFunc   func() []domain.Notification
	MarkReadFunc        func(id string) bool
	ClearAllFunc        func()
	ConnectedFunc       func() bool
	LastUpdateFunc      func() *time.Time
	PerturbChargersFunc func(chargers []domain.ChargerWithDistance) []domain.ChargerWithDistance
	WatchFunc           func(chargers []domain.ChargerWithDistance)
}

func (m *MockNotifierService) Notifications() []domain.Notification {
	if m.NotificationsFunc != nil {
		return m.NotificationsFunc()
	}
	return []domain.Notification{}
}

func (m *MockNotifierService) MarkRead(id string) bool {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(id)
	}
	return false
}

func (m *MockNotifierService) ClearAll() {
	if m.ClearAllFunc != nil {
		m.ClearAllFunc()
	}
}

func (m *MockNotifierService) Connected() bool {
	if m.ConnectedFunc != nil {
		return m.ConnectedFunc()
	}
	return true
}

func (m *MockNotifierService) LastUpdate() *time.Time {
	if m.LastUpdateFunc != nil {
		return m.LastUpdateFunc()
	}
	return nil
}

func (m *MockNotifierService) PerturbChargers(chargers []domain.ChargerWithDistance) []domain.ChargerWithDistance {
	if m.PerturbChargersFunc != nil {
		return m.PerturbChargersFunc(chargers)
	}
	return chargers
}

func (m *MockNotifierService) Watch(chargers []domain.ChargerWithDistance) {
	if m.WatchFunc != nil {
		m.WatchFunc(chargers)
	}
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	SignUpFunc        func(ctx context.Context, email, password, name string) (*domain.User, error)
	SignInFunc        func(ctx context.Context, email, password string) (string, *domain.User, error)
	ValidateTokenFunc func(ctx context.Context, token string) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, userID string, name, email string) (*domain.User, error)
}

func (m *MockAuthService) SignUp(ctx context.Context, email, password, name string) (*domain.User, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, email, password, name)
	}
	return nil, nil
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, email, password)
	}
	return "", nil, nil
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID string, name, email string) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, name, email)
	}
	return nil, nil
}
