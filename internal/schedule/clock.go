package schedule

import (
	"time"

	"github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/model"
)

// Status derives a draw's lifecycle state from the supplied instant. The
// transition is one-way: once now reaches ScheduledTime the draw is
// completed and never reverts. Status is recomputed on every check rather
// than stored on the draw.
func Status(draw model.Draw, now time.Time) model.DrawStatus {
	if now.Before(draw.ScheduledTime) {
		return model.DrawUpcoming
	}

	return model.DrawCompleted
}

// NextDraw returns the upcoming draw with the earliest scheduled time, or
// nil when the day's draws are exhausted. Scheduled times within a
// well-formed game are distinct, so no tie-break is needed.
func NextDraw(game model.Game, now time.Time) *model.Draw {
	var next *model.Draw

	for i := range game.Draws {
		draw := &game.Draws[i]

		if Status(*draw, now) != model.DrawUpcoming {
			continue
		}

		if next == nil || draw.ScheduledTime.Before(next.ScheduledTime) {
			next = draw
		}
	}

	return next
}
