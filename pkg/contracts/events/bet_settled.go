package events

// BetSettled is emitted after a horse bet has been settled and both the
// wallet balance and the bet record are committed.
type BetSettled struct {
	BetID        string  `json:"bet_id"`
	UserID       string  `json:"user_id"`
	HorseChoice  int     `json:"horse_choice"`
	BetAmount    float64 `json:"bet_amount"`
	WinningHorse int     `json:"winning_horse"`
	Result       string  `json:"result"` // "win" | "loss"
	Winnings     float64 `json:"winnings"`
	NewBalance   float64 `json:"new_balance"`
	TsUnixMs     int64   `json:"ts_unix_ms"`
}
