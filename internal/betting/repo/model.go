package repo

import "time"

// Results of a settled bet.
const (
	ResultWin  = "win"
	ResultLoss = "loss"
)

// Bet is the immutable record of one betting transaction.
type Bet struct {
	ID           string
	UserID       string
	HorseChoice  int
	BetAmount    float64
	WinningHorse int
	Result       string
	Winnings     float64
	CreatedAt    time.Time
}
