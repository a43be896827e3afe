package post_result

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slog"

	"github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/handlers/event"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/handlers/job"
	resp "github.com/jayarAsio/stl-gaming-system-sub001/internal/lib/api/response"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/lib/logger/sl"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/schedule"
)

type Request struct {
	Game string `json:"game" validate:"required"`
	// Time is the draw's scheduled wall-clock time, "HH:MM".
	Time   string `json:"time" validate:"required"`
	Result string `json:"result" validate:"required,min=1"`
}

type Response struct {
	resp.Response
}

type ResultPoster interface {
	PostResult(game string, drawTime time.Time, result string, postedAt time.Time) error
}

type PostResult struct {
	log        *slog.Logger
	validator  *validator.Validate
	source     ResultPoster
	hub        *event.Hub
	dispatcher *job.Dispatcher
}

func NewPostResult(
	log *slog.Logger,
	source ResultPoster,
	hub *event.Hub,
	dispatcher *job.Dispatcher) *PostResult {
	return &PostResult{
		log:        log,
		validator:  validator.New(),
		source:     source,
		hub:        hub,
		dispatcher: dispatcher,
	}
}

func (p *PostResult) New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.result.New"

		var (
			err error
			req Request
			log *slog.Logger
		)

		log = p.log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))

			render.JSON(w, r, resp.Error("failed to decode request body", http.StatusBadRequest))

			return
		}

		if err = p.validator.Struct(req); err != nil {
			validateErr := err.(validator.ValidationErrors)

			log.Error("invalid request", sl.Err(err))

			render.JSON(w, r, resp.ValidationError(validateErr))

			return
		}

		parsed, err := time.Parse("15:04", req.Time)
		if err != nil {
			log.Error("failed to parse draw time", sl.Err(err))

			render.JSON(w, r, resp.Error("draw time must be HH:MM", http.StatusBadRequest))

			return
		}

		now := time.Now()
		drawTime := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location())

		err = p.source.PostResult(req.Game, drawTime, req.Result, now)
		if err != nil {
			log.Error("failed to post draw result", sl.Err(err))

			switch {
			case errors.Is(err, schedule.ErrUnknownGame), errors.Is(err, schedule.ErrUnknownDraw):
				render.JSON(w, r, resp.Error("no such draw in today's schedule", http.StatusNotFound))
			case errors.Is(err, schedule.ErrDrawNotCompleted):
				render.JSON(w, r, resp.Error("draw has not happened yet", http.StatusBadRequest))
			case errors.Is(err, schedule.ErrResultAlreadyPosted):
				render.JSON(w, r, resp.Error("draw result is already posted", http.StatusConflict))
			default:
				render.JSON(w, r, resp.Error("failed to post draw result", http.StatusInternalServerError))
			}

			return
		}

		log.Info("draw result posted",
			slog.String("game", req.Game),
			slog.String("time", req.Time),
			slog.String("result", req.Result))

		eventMessage := event.Message{
			Channel: "draws",
			Event:   "result_posted",
			Data: map[string]interface{}{
				"game":   req.Game,
				"time":   drawTime.Format("3:04 PM"),
				"result": req.Result,
			},
		}
		p.dispatcher.Dispatch(&job.SendEventJob{EventMessage: eventMessage, Hub: p.hub}, 0)

		render.JSON(w, r, Response{
			Response: resp.OK(),
		})
	}
}
