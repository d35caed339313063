package topics

const (
	BetSettled = "bet_settled"
)
