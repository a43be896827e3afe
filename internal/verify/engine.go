package verify

import (
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/model"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/schedule"
)

// drawTimeLayout is the display form of a draw time in check results.
const drawTimeLayout = "3:04 PM"

// Engine checks a parsed ticket against a schedule snapshot at an
// injected instant. Verification never mutates the schedule and carries
// no clock of its own, so the same (ticket, schedule, now) always yields
// the same outcome.
type Engine struct {
	payout *PayoutCalculator
	log    *slog.Logger
}

func NewEngine(payout *PayoutCalculator, log *slog.Logger) *Engine {
	return &Engine{
		payout: payout,
		log:    log,
	}
}

// Verify walks the ticket's bets in order. Each bet resolves to a game
// (or is skipped), and every completed draw of that game with a posted
// result produces one WinningCheckResult, in bet-then-draw order.
// Authenticity is the issuing system's verified flag passed through
// untouched; it is independent of whether any bet wins.
func (e *Engine) Verify(t *model.Ticket, sched *model.Schedule, now time.Time) (*model.VerificationOutcome, error) {
	const op = "verify.Engine.Verify"

	outcome := &model.VerificationOutcome{
		Authentic: t.Verified,
		Results:   make([]model.WinningCheckResult, 0),
	}

	for _, bet := range t.Bets {
		game := Resolve(bet.Game, sched)
		if game == nil {
			e.log.Info("bet game is not in today's schedule",
				slog.String("ticket_id", t.ID),
				slog.String("game", bet.Game))

			continue
		}

		for _, draw := range game.Draws {
			if schedule.Status(draw, now) != model.DrawCompleted || draw.Result == nil {
				continue
			}

			result := model.WinningCheckResult{
				Game:       game.Name,
				Combo:      bet.Combo,
				Amount:     bet.Amount,
				DrawTime:   draw.ScheduledTime.Format(drawTimeLayout),
				DrawResult: *draw.Result,
			}

			if IsWinner(bet.Combo, *draw.Result) {
				payout, err := e.payout.Payout(bet.Amount, game.Name)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", op, err)
				}

				result.IsWinner = true
				result.Payout = payout
			}

			outcome.Results = append(outcome.Results, result)
		}
	}

	return outcome, nil
}
