package model

import "time"

// Ticket is the parsed form of a scanned payload. It is read-only after
// parsing and lives only for the scan that produced it.
type Ticket struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Total     float64   `json:"total"`
	Verified  bool      `json:"verified"`
	Bets      []Bet     `json:"bets"`
}

// Bet carries the game label as printed on the ticket, which is free text
// and not guaranteed to equal a canonical game name.
type Bet struct {
	Game   string  `json:"game"`
	Combo  string  `json:"combo"`
	Amount float64 `json:"amount"`
}
