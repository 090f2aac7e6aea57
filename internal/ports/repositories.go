package ports

import (
	"context"
	"errors"

	"github.com/chargehub/chargehub/internal/domain"
)

// ErrNotFound is returned by stores and repositories when a key or record
// does not exist.
var ErrNotFound = errors.New("not found")

// StateStore is a whole-record key-value table, the process analogue of
// browser local storage. Every Set replaces the full value under the key;
// there is no partial update, versioning, or migration.
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// SessionRepository persists charging sessions. Save maintains both the
// bounded history and the single active slot: a session in a non-terminal
// starting/active status occupies the slot, any other status clears it.
type SessionRepository interface {
	Save(ctx context.Context, session *domain.ChargingSession) error
	Active(ctx context.Context) (*domain.ChargingSession, error)
	History(ctx context.Context) ([]domain.ChargingSession, error)
}

// AccountRepository persists the network account set as a single record.
type AccountRepository interface {
	Load(ctx context.Context) ([]domain.NetworkAccount, error)
	Store(ctx context.Context, accounts []domain.NetworkAccount) error
}

// UserRepository persists registered users and the signed-in user record.
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SettingsRepository persists the free-form settings bag.
type SettingsRepository interface {
	Load(ctx context.Context) (domain.Settings, error)
	Store(ctx context.Context, settings domain.Settings) error
}
