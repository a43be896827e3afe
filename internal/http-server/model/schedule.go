package model

import "time"

type DrawStatus string

const (
	DrawUpcoming  DrawStatus = "upcoming"
	DrawCompleted DrawStatus = "completed"
)

// Draw is one scheduled drawing of a game on the current calendar day.
// Result stays nil until the schedule source posts it; it is set exactly
// once, at or after ScheduledTime.
type Draw struct {
	ScheduledTime time.Time `json:"scheduled_time"`
	Result        *string   `json:"result,omitempty"`
}

// Game is an immutable catalog entry. Draws keep their authored order,
// which is not guaranteed to be sorted by time.
type Game struct {
	Name  string `json:"name"`
	Draws []Draw `json:"draws"`
}

// Schedule is the day's ordered set of games. Every draw's ScheduledTime
// falls within Day; a new schedule must be built when the day rolls over.
type Schedule struct {
	Day   time.Time `json:"day"`
	Games []Game    `json:"games"`
}
