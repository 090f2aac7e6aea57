// Package account tracks the simulated links between the user and the six
// known charging networks.
package account

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/clock"
	"github.com/chargehub/chargehub/internal/domain"
	"github.com/chargehub/chargehub/internal/ports"
)

// ErrUnknownNetwork rejects operations on a network outside the fixed set.
var ErrUnknownNetwork = errors.New("unknown charging network")

type Config struct {
	LinkDelay time.Duration // simulated account-link round-trip
}

// Service mutates the account set with whole-record read-modify-write
// under one mutex; ordering between concurrent mutations is last-write-wins.
type Service struct {
	cfg   Config
	repo  ports.AccountRepository
	clock clock.Clock
	log   *zap.Logger

	mu sync.Mutex
}

func NewService(cfg Config, repo ports.AccountRepository, clk clock.Clock, log *zap.Logger) ports.AccountService {
	return &Service{
		cfg:   cfg,
		repo:  repo,
		clock: clk,
		log:   log,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.NetworkAccount, error) {
	return s.repo.Load(ctx)
}

// Connect links a network account, waiting out the simulated exchange with
// the provider. Re-connecting an already-connected network overwrites the
// email and timestamp.
func (s *Service) Connect(ctx context.Context, networkName, email string) ([]domain.NetworkAccount, error) {
	if err := s.update(ctx, networkName, func(account *domain.NetworkAccount) {
		account.Status = domain.AccountStatusConnecting
		account.ErrorMessage = ""
	}); err != nil {
		return nil, err
	}

	// Simulated provider handshake. Always resolves.
	s.clock.Sleep(s.cfg.LinkDelay)

	now := s.clock.Now()
	if err := s.update(ctx, networkName, func(account *domain.NetworkAccount) {
		account.Status = domain.AccountStatusConnected
		account.AccountEmail = email
		account.LastConnected = &now
		account.ErrorMessage = ""
	}); err != nil {
		return nil, err
	}

	s.log.Info("Network account connected", zap.String("network", networkName))
	return s.repo.Load(ctx)
}

// Disconnect clears the link but retains the record; networks are never
// removed from the known set.
func (s *Service) Disconnect(ctx context.Context, networkName string) ([]domain.NetworkAccount, error) {
	if err := s.update(ctx, networkName, func(account *domain.NetworkAccount) {
		account.Status = domain.AccountStatusNotConnected
		account.AccountEmail = ""
		account.LastConnected = nil
		account.ErrorMessage = ""
	}); err != nil {
		return nil, err
	}

	s.log.Info("Network account disconnected", zap.String("network", networkName))
	return s.repo.Load(ctx)
}

// IsConnected reports whether the user has a linked account on the
// network. Used by the directory to derive the accountConnected flag at
// read time.
func (s *Service) IsConnected(ctx context.Context, networkName string) bool {
	accounts, err := s.repo.Load(ctx)
	if err != nil {
		return false
	}
	for _, account := range accounts {
		if account.Name == networkName {
			return account.Status == domain.AccountStatusConnected
		}
	}
	return false
}

func (s *Service) update(ctx context.Context, networkName string, mutate func(*domain.NetworkAccount)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range accounts {
		if accounts[i].Name == networkName {
			mutate(&accounts[i])
			found = true
			break
		}
	}
	if !found {
		return ErrUnknownNetwork
	}

	return s.repo.Store(ctx, accounts)
}
