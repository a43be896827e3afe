package verify

import (
	"errors"
	"fmt"

	"github.com/jayarAsio/stl-gaming-system-sub001/internal/config"
)

// ErrInvalidAmount flags a non-positive stake reaching payout
// computation, which points at a corrupt or adversarial ticket.
var ErrInvalidAmount = errors.New("bet amount must be positive")

// PayoutCalculator applies the externally configured per-peso multiplier
// table. Games absent from the table pay the default multiplier.
type PayoutCalculator struct {
	payout config.PayoutConfig
}

func NewPayoutCalculator(cfg config.PayoutConfig) *PayoutCalculator {
	return &PayoutCalculator{payout: cfg}
}

func (c *PayoutCalculator) Payout(amount float64, canonicalGame string) (float64, error) {
	const op = "verify.PayoutCalculator.Payout"

	if amount <= 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrInvalidAmount)
	}

	return amount * c.payout.MultiplierFor(canonicalGame), nil
}
