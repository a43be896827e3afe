package model

// WinningCheckResult is one evaluated (bet, completed draw) pair. Produced
// fresh on every verification, never persisted.
type WinningCheckResult struct {
	Game       string  `json:"game"`
	Combo      string  `json:"combo"`
	Amount     float64 `json:"amount"`
	DrawTime   string  `json:"drawTime"`
	DrawResult string  `json:"drawResult"`
	IsWinner   bool    `json:"isWinner"`
	Payout     float64 `json:"payout"`
}

type VerificationOutcome struct {
	Authentic bool                 `json:"authentic"`
	Results   []WinningCheckResult `json:"results"`
}
