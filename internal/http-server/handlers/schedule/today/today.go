package today

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"golang.org/x/exp/slog"

	"github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/model"
	resp "github.com/jayarAsio/stl-gaming-system-sub001/internal/lib/api/response"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/lib/logger/sl"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/schedule"
)

type Response struct {
	resp.Response
	Day   string     `json:"day"`
	Games []GameView `json:"games"`
}

type GameView struct {
	Name     string     `json:"name"`
	Draws    []DrawView `json:"draws"`
	NextDraw *string    `json:"next_draw,omitempty"`
}

type DrawView struct {
	Time   string           `json:"time"`
	Status model.DrawStatus `json:"status"`
	Result *string          `json:"result,omitempty"`
}

type ScheduleSource interface {
	Today(now time.Time) (*model.Schedule, error)
}

type Today struct {
	log    *slog.Logger
	source ScheduleSource
}

func NewToday(log *slog.Logger, source ScheduleSource) *Today {
	return &Today{
		log:    log,
		source: source,
	}
}

func (t *Today) New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.today.New"

		log := t.log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		now := time.Now()

		sched, err := t.source.Today(now)
		if err != nil {
			log.Error("failed to load today's schedule", sl.Err(err))

			render.JSON(w, r, resp.Error("failed to load today's schedule", http.StatusInternalServerError))

			return
		}

		games := make([]GameView, 0, len(sched.Games))

		for _, game := range sched.Games {
			view := GameView{
				Name:  game.Name,
				Draws: make([]DrawView, 0, len(game.Draws)),
			}

			for _, draw := range game.Draws {
				view.Draws = append(view.Draws, DrawView{
					Time:   draw.ScheduledTime.Format("3:04 PM"),
					Status: schedule.Status(draw, now),
					Result: draw.Result,
				})
			}

			if next := schedule.NextDraw(game, now); next != nil {
				nextTime := next.ScheduledTime.Format("3:04 PM")
				view.NextDraw = &nextTime
			}

			games = append(games, view)
		}

		render.JSON(w, r, Response{
			Response: resp.OK(),
			Day:      sched.Day.Format("2006-01-02"),
			Games:    games,
		})
	}
}
