package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/domain"
	"github.com/chargehub/chargehub/internal/ports"
)

// Persisted record keys. Each key holds one whole JSON value and is always
// replaced in full.
const (
	KeySessions      = "chargehub_sessions"
	KeyActiveSession = "chargehub_active_session"
	KeyAccounts      = "chargehub_accounts"
	KeyUsers         = "chargehub_users"
	KeySettings      = "chargehub_settings"
)

// MaxSessionHistory bounds the retained session history, newest first.
const MaxSessionHistory = 50

// SessionRepository keeps the session history and the single active-slot
// pointer. A session in a starting/active status occupies the slot; saving
// it in any other status removes the slot while the history record remains.
type SessionRepository struct {
	mu    sync.Mutex
	store ports.StateStore
	log   *zap.Logger
}

func NewSessionRepository(store ports.StateStore, log *zap.Logger) *SessionRepository {
	return &SessionRepository{store: store, log: log}
}

func (r *SessionRepository) Save(ctx context.Context, session *domain.ChargingSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions := r.loadHistory(ctx)

	found := false
	for i := range sessions {
		if sessions[i].ID == session.ID {
			sessions[i] = *session
			found = true
			break
		}
	}
	if !found {
		sessions = append([]domain.ChargingSession{*session}, sessions...)
	}
	if len(sessions) > MaxSessionHistory {
		sessions = sessions[:MaxSessionHistory]
	}

	raw, err := json.Marshal(sessions)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, KeySessions, raw); err != nil {
		r.log.Error("Failed to persist session history", zap.Error(err))
	}

	if session.Status == domain.SessionStatusStarting || session.Status == domain.SessionStatusActive {
		raw, err := json.Marshal(session)
		if err != nil {
			return err
		}
		if err := r.store.Set(ctx, KeyActiveSession, raw); err != nil {
			r.log.Error("Failed to persist active session", zap.Error(err))
		}
	} else {
		if err := r.store.Delete(ctx, KeyActiveSession); err != nil {
			r.log.Error("Failed to clear active session", zap.Error(err))
		}
	}

	return nil
}

func (r *SessionRepository) Active(ctx context.Context) (*domain.ChargingSession, error) {
	raw, err := r.store.Get(ctx, KeyActiveSession)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to load active session", zap.Error(err))
		return nil, nil
	}

	var session domain.ChargingSession
	if err := json.Unmarshal(raw, &session); err != nil {
		r.log.Error("Stored active session corrupt", zap.Error(err))
		return nil, nil
	}
	return &session, nil
}

func (r *SessionRepository) History(ctx context.Context) ([]domain.ChargingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadHistory(ctx), nil
}

func (r *SessionRepository) loadHistory(ctx context.Context) []domain.ChargingSession {
	raw, err := r.store.Get(ctx, KeySessions)
	if errors.Is(err, ports.ErrNotFound) {
		return nil
	}
	if err != nil {
		r.log.Error("Failed to load session history", zap.Error(err))
		return nil
	}

	var sessions []domain.ChargingSession
	if err := json.Unmarshal(raw, &sessions); err != nil {
		r.log.Error("Stored session history corrupt", zap.Error(err))
		return nil
	}
	return sessions
}

// AccountRepository persists the network account set as one record. Load
// merges the stored set with the fixed defaults so every known network is
// always present, even if stored state predates a network.
type AccountRepository struct {
	store ports.StateStore
	log   *zap.Logger
}

func NewAccountRepository(store ports.StateStore, log *zap.Logger) *AccountRepository {
	return &AccountRepository{store: store, log: log}
}

func (r *AccountRepository) Load(ctx context.Context) ([]domain.NetworkAccount, error) {
	defaults := domain.DefaultAccounts()

	raw, err := r.store.Get(ctx, KeyAccounts)
	if errors.Is(err, ports.ErrNotFound) {
		return defaults, nil
	}
	if err != nil {
		r.log.Error("Failed to load accounts", zap.Error(err))
		return defaults, nil
	}

	var stored []domain.NetworkAccount
	if err := json.Unmarshal(raw, &stored); err != nil {
		r.log.Error("Stored accounts corrupt", zap.Error(err))
		return defaults, nil
	}

	byName := make(map[string]domain.NetworkAccount, len(stored))
	for _, account := range stored {
		byName[account.Name] = account
	}
	for i, account := range defaults {
		if found, ok := byName[account.Name]; ok {
			defaults[i] = found
		}
	}
	return defaults, nil
}

func (r *AccountRepository) Store(ctx context.Context, accounts []domain.NetworkAccount) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, KeyAccounts, raw); err != nil {
		r.log.Error("Failed to persist accounts", zap.Error(err))
	}
	return nil
}

// UserRepository persists registered users as one record.
type UserRepository struct {
	mu    sync.Mutex
	store ports.StateStore
	log   *zap.Logger
}

func NewUserRepository(store ports.StateStore, log *zap.Logger) *UserRepository {
	return &UserRepository{store: store, log: log}
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.loadUsers(ctx)
	found := false
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			found = true
			break
		}
	}
	if !found {
		users = append(users, *user)
	}

	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, KeyUsers, raw)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.loadUsers(ctx) {
		if user.ID == id {
			return &user, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.loadUsers(ctx) {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) loadUsers(ctx context.Context) []domain.User {
	raw, err := r.store.Get(ctx, KeyUsers)
	if errors.Is(err, ports.ErrNotFound) {
		return nil
	}
	if err != nil {
		r.log.Error("Failed to load users", zap.Error(err))
		return nil
	}

	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		r.log.Error("Stored users corrupt", zap.Error(err))
		return nil
	}
	return users
}

// SettingsRepository persists the settings bag.
type SettingsRepository struct {
	store ports.StateStore
	log   *zap.Logger
}

func NewSettingsRepository(store ports.StateStore, log *zap.Logger) *SettingsRepository {
	return &SettingsRepository{store: store, log: log}
}

func (r *SettingsRepository) Load(ctx context.Context) (domain.Settings, error) {
	raw, err := r.store.Get(ctx, KeySettings)
	if errors.Is(err, ports.ErrNotFound) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		r.log.Error("Failed to load settings", zap.Error(err))
		return domain.DefaultSettings(), nil
	}

	var settings domain.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		r.log.Error("Stored settings corrupt", zap.Error(err))
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

func (r *SettingsRepository) Store(ctx context.Context, settings domain.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, KeySettings, raw)
}
