package config

type ScheduleConfig struct {
	Games []GameConfig `yaml:"games"`
}

type GameConfig struct {
	Name string `yaml:"name"`
	// DrawTimes are "HH:MM" wall-clock times, distinct within a game.
	DrawTimes []string `yaml:"draw_times"`
}

type PayoutConfig struct {
	// Multipliers maps a canonical game name to its per-peso multiplier.
	Multipliers map[string]float64 `yaml:"multipliers"`
	// DefaultMultiplier applies to any game absent from the table.
	DefaultMultiplier float64 `yaml:"default_multiplier"`
}

func (p PayoutConfig) MultiplierFor(game string) float64 {
	multiplier, ok := p.Multipliers[game]
	if !ok {
		return p.DefaultMultiplier
	}

	return multiplier
}

var DefaultScheduleConfig = ScheduleConfig{
	Games: []GameConfig{
		{
			Name:      "Swertres",
			DrawTimes: []string{"14:00", "17:00", "21:00"},
		},
		{
			Name:      "EZ2",
			DrawTimes: []string{"14:00", "17:00", "21:00"},
		},
		{
			Name:      "STL Pares",
			DrawTimes: []string{"10:30", "15:00", "19:00"},
		},
	},
}

var DefaultPayoutConfig = PayoutConfig{
	Multipliers: map[string]float64{
		"Swertres":  500,
		"EZ2":       70,
		"STL Pares": 700,
	},
	DefaultMultiplier: 100,
}
