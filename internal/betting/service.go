package betting

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/gauravbalpande/final-winner/internal/betting/repo"
	"github.com/gauravbalpande/final-winner/pkg/contracts/events"
)

// WinMultiplier is the payout factor for a winning bet.
const WinMultiplier = 2.0

const horseCount = 4

var (
	ErrInvalidHorseChoice = errors.New("invalid horse choice, must be between 1 and 4")
	ErrInvalidBetAmount   = errors.New("bet amount must be greater than 0")
)

var betsSettledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bets_settled_total",
	Help: "Settled horse bets by result.",
}, []string{"result"})

// Store is the persistence surface for bets.
type Store interface {
	Settle(ctx context.Context, b *repo.Bet) (newBalance float64, err error)
	RecentByUser(ctx context.Context, userID string, limit int) ([]repo.Bet, error)
}

// Publisher emits settled-bet events. Publishing is fire-and-forget.
type Publisher interface {
	PublishBetSettled(ctx context.Context, e events.BetSettled) error
}

// Invalidator drops cached balances after settlement mutates a wallet.
type Invalidator interface {
	Invalidate(ctx context.Context, userID string)
}

// Service runs the horse race game.
type Service struct {
	log     *zap.Logger
	store   Store
	publ    Publisher   // may be nil
	balance Invalidator // may be nil
	draw    func() int
}

func NewService(log *zap.Logger, store Store, publ Publisher, balance Invalidator) *Service {
	return &Service{
		log:     log,
		store:   store,
		publ:    publ,
		balance: balance,
		draw:    func() int { return rand.Intn(horseCount) + 1 },
	}
}

// PlaceHorseBet draws the winning horse uniformly from {1..4}, settles the
// stake against the caller's wallet in one transaction and records the
// bet. Returns the bet with the resulting balance.
func (s *Service) PlaceHorseBet(ctx context.Context, userID string, horseChoice int, betAmount float64) (*repo.Bet, float64, error) {
	if horseChoice < 1 || horseChoice > horseCount {
		return nil, 0, ErrInvalidHorseChoice
	}
	if betAmount <= 0 {
		return nil, 0, ErrInvalidBetAmount
	}

	winningHorse := s.draw()

	bet := &repo.Bet{
		UserID:       userID,
		HorseChoice:  horseChoice,
		BetAmount:    betAmount,
		WinningHorse: winningHorse,
		Result:       repo.ResultLoss,
		Winnings:     0,
	}
	if horseChoice == winningHorse {
		bet.Result = repo.ResultWin
		bet.Winnings = betAmount * WinMultiplier
	}

	newBalance, err := s.store.Settle(ctx, bet)
	if err != nil {
		return nil, 0, fmt.Errorf("settle bet: %w", err)
	}

	betsSettledTotal.WithLabelValues(bet.Result).Inc()

	if s.balance != nil {
		s.balance.Invalidate(ctx, userID)
	}

	if s.publ != nil {
		if err := s.publ.PublishBetSettled(ctx, events.BetSettled{
			BetID:        bet.ID,
			UserID:       bet.UserID,
			HorseChoice:  bet.HorseChoice,
			BetAmount:    bet.BetAmount,
			WinningHorse: bet.WinningHorse,
			Result:       bet.Result,
			Winnings:     bet.Winnings,
			NewBalance:   newBalance,
		}); err != nil {
			s.log.Warn("publish bet_settled failed", zap.Error(err), zap.String("bet_id", bet.ID))
		}
	}

	s.log.Info("bet settled",
		zap.String("bet_id", bet.ID),
		zap.String("user_id", userID),
		zap.String("result", bet.Result),
		zap.Float64("new_balance", newBalance))

	return bet, newBalance, nil
}

// History returns the caller's latest bets, newest first.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]repo.Bet, error) {
	return s.store.RecentByUser(ctx, userID, limit)
}
