package verify_ticket

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/model"
	resp "github.com/jayarAsio/stl-gaming-system-sub001/internal/lib/api/response"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/lib/converter"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/lib/logger/sl"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/ticket"
)

type Request struct {
	Payload string `json:"payload" validate:"required"`
}

type Response struct {
	resp.Response
	ScanID    string                     `json:"scan_id"`
	Authentic bool                       `json:"authentic"`
	Results   []model.WinningCheckResult `json:"results"`
}

type TicketParser interface {
	Parse(raw string) (*model.Ticket, error)
}

type ScheduleSource interface {
	Today(now time.Time) (*model.Schedule, error)
}

type Verifier interface {
	Verify(t *model.Ticket, sched *model.Schedule, now time.Time) (*model.VerificationOutcome, error)
}

type VerifyTicket struct {
	log       *slog.Logger
	validator *validator.Validate
	parser    TicketParser
	source    ScheduleSource
	engine    Verifier
}

func NewVerifyTicket(
	log *slog.Logger,
	parser TicketParser,
	source ScheduleSource,
	engine Verifier) *VerifyTicket {
	return &VerifyTicket{
		log:       log,
		validator: validator.New(),
		parser:    parser,
		source:    source,
		engine:    engine,
	}
}

func (v *VerifyTicket) New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.verify.New"

		var (
			err     error
			req     Request
			log     *slog.Logger
			scanned *model.Ticket
			sched   *model.Schedule
			outcome *model.VerificationOutcome
		)

		log = v.log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))

			render.JSON(w, r, resp.Error("failed to decode request body", http.StatusBadRequest))

			return
		}

		if err = v.validator.Struct(req); err != nil {
			validateErr := err.(validator.ValidationErrors)

			log.Error("invalid request", sl.Err(err))

			render.JSON(w, r, resp.ValidationError(validateErr))

			return
		}

		scanID := uuid.New().String()

		log = log.With(slog.String("scan_id", scanID))

		scanned, err = v.parser.Parse(req.Payload)
		if err != nil {
			log.Error("failed to parse scan payload", sl.Err(err))

			switch {
			case errors.Is(err, ticket.ErrMalformedPayload):
				render.JSON(w, r, resp.RetryableError("payload is not readable, rescan the ticket", http.StatusBadRequest))
			case errors.Is(err, ticket.ErrInvalidTicket):
				render.JSON(w, r, resp.RetryableError("ticket is incomplete, rescan the ticket", http.StatusBadRequest))
			default:
				render.JSON(w, r, resp.Error("failed to parse scan payload", http.StatusInternalServerError))
			}

			return
		}

		log.Info("ticket parsed",
			slog.String("ticket_id", scanned.ID),
			sl.Int("bets", len(scanned.Bets)))

		now := time.Now()

		sched, err = v.source.Today(now)
		if err != nil {
			log.Error("failed to load today's schedule", sl.Err(err))

			render.JSON(w, r, resp.Error("failed to load today's schedule", http.StatusInternalServerError))

			return
		}

		outcome, err = v.engine.Verify(scanned, sched, now)
		if err != nil {
			log.Error("failed to verify ticket", sl.Err(err))

			render.JSON(w, r, resp.RetryableError("ticket could not be verified, rescan the ticket", http.StatusBadRequest))

			return
		}

		var payoutTotal float64
		for _, result := range outcome.Results {
			payoutTotal += result.Payout
		}

		log.Info("ticket verified",
			slog.String("ticket_id", scanned.ID),
			slog.Bool("authentic", outcome.Authentic),
			sl.Int("results", len(outcome.Results)),
			sl.String("payout_total", converter.FormatPesos(payoutTotal)))

		render.JSON(w, r, Response{
			Response:  resp.OK(),
			ScanID:    scanID,
			Authentic: outcome.Authentic,
			Results:   outcome.Results,
		})
	}
}
