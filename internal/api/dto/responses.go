package dto

import "time"

// ErrorResponse is the error body shape the frontend consumes.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// UserResponse is the sanitized public view of a user. The password hash
// never appears here.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// UserView is the trimmed user payload returned on login.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Message   string   `json:"message"`
	User      UserView `json:"user"`
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"` // "bearer"
}

type BalanceResponse struct {
	UserID  string  `json:"user_id"`
	Balance float64 `json:"balance"`
}

type BetResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	HorseChoice  int       `json:"horse_choice"`
	BetAmount    float64   `json:"bet_amount"`
	WinningHorse int       `json:"winning_horse"`
	Result       string    `json:"result"` // "win" | "loss"
	Winnings     float64   `json:"winnings"`
	NewBalance   float64   `json:"new_balance"`
	CreatedAt    time.Time `json:"created_at"`
}

// HistoryBet is a past bet; balances are point-in-time and not repeated
// here.
type HistoryBet struct {
	ID           string    `json:"id"`
	HorseChoice  int       `json:"horse_choice"`
	BetAmount    float64   `json:"bet_amount"`
	WinningHorse int       `json:"winning_horse"`
	Result       string    `json:"result"`
	Winnings     float64   `json:"winnings"`
	CreatedAt    time.Time `json:"created_at"`
}

type BetHistoryResponse struct {
	Bets []HistoryBet `json:"bets"`
}

type PaymentStatusResponse struct {
	Status           string   `json:"status"`
	Message          string   `json:"message"`
	SupportedMethods []string `json:"supported_methods"`
	Note             string   `json:"note"`
}

type PaymentStubResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
