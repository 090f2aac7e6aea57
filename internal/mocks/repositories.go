package mocks

import (
	"context"

	"github.com/chargehub/chargehub/internal/domain"
)

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	SaveFunc    func(ctx context.Context, session *domain.ChargingSession) error
	ActiveFunc  func(ctx context.Context) (*domain.ChargingSession, error)
	HistoryFunc func(ctx context.Context) ([]domain.ChargingSession, error)
}

func (m *MockSessionRepository) Save(ctx context.Context, session *domain.ChargingSession) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, session)
	}
	return nil
}

func (m *MockSessionRepository) Active(ctx context.Context) (*domain.ChargingSession, error) {
	if m.ActiveFunc != nil {
		return m.ActiveFunc(ctx)
	}
	return nil, nil
}

func (m *MockSessionRepository) History(ctx context.Context) ([]domain.ChargingSession, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx)
	}
	return []domain.ChargingSession{}, nil
}

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	LoadFunc  func(ctx context.Context) ([]domain.NetworkAccount, error)
	StoreFunc func(ctx context.Context, accounts []domain.NetworkAccount) error
}

func (m *MockAccountRepository) Load(ctx context.Context) ([]domain.NetworkAccount, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return domain.DefaultAccounts(), nil
}

func (m *MockAccountRepository) Store(ctx context.Context, accounts []domain.NetworkAccount) error {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, accounts)
	}
	return nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	SaveFunc        func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	LoadFunc  func(ctx context.Context) (domain.Settings, error)
	StoreFunc func(ctx context.Context, settings domain.Settings) error
}

func (m *MockSettingsRepository) Load(ctx context.Context) (domain.Settings, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return domain.DefaultSettings(), nil
}

func (m *MockSettingsRepository) Store(ctx context.Context, settings domain.Settings) error {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, settings)
	}
	return nil
}
