package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gauravbalpande/final-winner/internal/wallet/repo"
)

type mockRepo struct {
	balances map[string]float64
	reads    int
}

func (m *mockRepo) Balance(ctx context.Context, userID string) (float64, error) {
	m.reads++
	b, ok := m.balances[userID]
	if !ok {
		return 0, repo.ErrWalletNotFound
	}
	return b, nil
}

func (m *mockRepo) SetBalance(ctx context.Context, userID string, balance float64) error {
	if _, ok := m.balances[userID]; !ok {
		return repo.ErrWalletNotFound
	}
	m.balances[userID] = balance
	return nil
}

type mockCache struct {
	values      map[string]float64
	invalidated []string
}

func (m *mockCache) Get(ctx context.Context, userID string) (float64, bool, error) {
	v, ok := m.values[userID]
	return v, ok, nil
}

func (m *mockCache) Set(ctx context.Context, userID string, balance float64) error {
	m.values[userID] = balance
	return nil
}

func (m *mockCache) Invalidate(ctx context.Context, userID string) error {
	delete(m.values, userID)
	m.invalidated = append(m.invalidated, userID)
	return nil
}

func TestBalanceWithoutCache(t *testing.T) {
	r := &mockRepo{balances: map[string]float64{"u1": 1000}}
	s := NewService(zap.NewNop(), r, nil)

	balance, err := s.Balance(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, balance)
}

func TestBalanceNotFound(t *testing.T) {
	r := &mockRepo{balances: map[string]float64{}}
	s := NewService(zap.NewNop(), r, nil)

	_, err := s.Balance(context.Background(), "unknown")
	assert.ErrorIs(t, err, repo.ErrWalletNotFound)
}

func TestBalanceCacheHitSkipsStore(t *testing.T) {
	r := &mockRepo{balances: map[string]float64{"u1": 1000}}
	c := &mockCache{values: map[string]float64{}}
	s := NewService(zap.NewNop(), r, c)

	// First read misses the cache and fills it.
	balance, err := s.Balance(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, balance)
	assert.Equal(t, 1, r.reads)

	// Second read is served from the cache.
	balance, err = s.Balance(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, balance)
	assert.Equal(t, 1, r.reads)
}

func TestSetBalanceInvalidatesCache(t *testing.T) {
	r := &mockRepo{balances: map[string]float64{"u1": 1000}}
	c := &mockCache{values: map[string]float64{"u1": 1000}}
	s := NewService(zap.NewNop(), r, c)

	require.NoError(t, s.SetBalance(context.Background(), "u1", 900))
	assert.Equal(t, 900.0, r.balances["u1"])
	assert.Equal(t, []string{"u1"}, c.invalidated)

	err := s.SetBalance(context.Background(), "unknown", 1)
	assert.ErrorIs(t, err, repo.ErrWalletNotFound)
}

func TestInvalidate(t *testing.T) {
	r := &mockRepo{balances: map[string]float64{"u1": 1000}}
	c := &mockCache{values: map[string]float64{"u1": 1000}}
	s := NewService(zap.NewNop(), r, c)

	s.Invalidate(context.Background(), "u1")
	assert.Empty(t, c.values)

	// Nil cache must be a no-op, not a panic.
	sNoCache := NewService(zap.NewNop(), r, nil)
	sNoCache.Invalidate(context.Background(), "u1")
}
