package dto

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type HorseBetRequest struct {
	HorseChoice int     `json:"horse_choice"` // 1..4
	BetAmount   float64 `json:"bet_amount"`
}
