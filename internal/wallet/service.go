package wallet

import (
	"context"

	"go.uber.org/zap"
)

// Repo is the persistence surface for wallets.
type Repo interface {
	Balance(ctx context.Context, userID string) (float64, error)
	SetBalance(ctx context.Context, userID string, balance float64) error
}

// Cache is an optional read cache in front of the wallet store.
type Cache interface {
	Get(ctx context.Context, userID string) (float64, bool, error)
	Set(ctx context.Context, userID string, balance float64) error
	Invalidate(ctx context.Context, userID string) error
}

// Service reads and writes wallet balances. The cache is best effort;
// every cache failure falls through to postgres.
type Service struct {
	log   *zap.Logger
	repo  Repo
	cache Cache // may be nil
}

func NewService(log *zap.Logger, r Repo, c Cache) *Service {
	return &Service{log: log, repo: r, cache: c}
}

// Balance returns the user's balance, serving from cache when possible.
func (s *Service) Balance(ctx context.Context, userID string) (float64, error) {
	if s.cache != nil {
		if balance, ok, err := s.cache.Get(ctx, userID); err == nil && ok {
			return balance, nil
		} else if err != nil {
			s.log.Warn("balance cache read failed", zap.Error(err))
		}
	}

	balance, err := s.repo.Balance(ctx, userID)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, balance); err != nil {
			s.log.Warn("balance cache write failed", zap.Error(err))
		}
	}
	return balance, nil
}

// SetBalance overwrites the balance and drops the cached value.
func (s *Service) SetBalance(ctx context.Context, userID string, balance float64) error {
	if err := s.repo.SetBalance(ctx, userID, balance); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

// Invalidate drops the cached balance for a user. Called by bet
// settlement, which mutates the balance outside this service.
func (s *Service) Invalidate(ctx context.Context, userID string) {
	s.invalidate(ctx, userID)
}

func (s *Service) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.Warn("balance cache invalidate failed", zap.Error(err))
	}
}
