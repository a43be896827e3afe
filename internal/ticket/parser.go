package ticket

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slog"

	"github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/model"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/lib/logger/sl"
)

var (
	// ErrMalformedPayload means the scan produced something that is not
	// structured ticket data at all.
	ErrMalformedPayload = errors.New("payload is not valid ticket data")
	// ErrInvalidTicket means the payload decoded but required fields are
	// absent or of the wrong shape.
	ErrInvalidTicket = errors.New("ticket payload is missing required fields")
)

type payload struct {
	ID        *string      `json:"id" validate:"required,min=1"`
	Timestamp *string      `json:"timestamp" validate:"required"`
	Total     *float64     `json:"total" validate:"required,min=0"`
	Verified  *bool        `json:"verified" validate:"required"`
	Bets      []betPayload `json:"bets" validate:"required,min=1,dive"`
}

type betPayload struct {
	Game   *string  `json:"game" validate:"required,min=1"`
	Combo  *string  `json:"combo" validate:"required,min=1"`
	Amount *float64 `json:"amount" validate:"required,gt=0"`
}

// Parser turns a raw scan payload into a model.Ticket. It is a purely
// structural step: bet fields pass through untouched, and the verified
// flag is carried forward, not judged.
type Parser struct {
	validator *validator.Validate
	log       *slog.Logger
}

func NewParser(log *slog.Logger) *Parser {
	return &Parser{
		validator: validator.New(),
		log:       log,
	}
}

func (p *Parser) Parse(raw string) (*model.Ticket, error) {
	const op = "ticket.Parser.Parse"

	var obj map[string]json.RawMessage

	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		p.log.Info("scan payload is not a JSON object", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, ErrMalformedPayload)
	}

	var pl payload

	if err := json.Unmarshal([]byte(raw), &pl); err != nil {
		p.log.Info("scan payload has mistyped fields", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidTicket)
	}

	if err := p.validator.Struct(pl); err != nil {
		p.log.Info("scan payload failed structural validation", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidTicket)
	}

	issuedAt, err := parseTimestamp(*pl.Timestamp)
	if err != nil {
		p.log.Info("scan payload has an unreadable timestamp", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidTicket)
	}

	t := &model.Ticket{
		ID:        *pl.ID,
		Timestamp: issuedAt,
		Total:     *pl.Total,
		Verified:  *pl.Verified,
		Bets:      make([]model.Bet, 0, len(pl.Bets)),
	}

	for _, bet := range pl.Bets {
		t.Bets = append(t.Bets, model.Bet{
			Game:   *bet.Game,
			Combo:  *bet.Combo,
			Amount: *bet.Amount,
		})
	}

	return t, nil
}

// parseTimestamp accepts ISO-8601 or an epoch value; issuing terminals
// have produced both.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	epoch, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q is neither ISO-8601 nor epoch", s)
	}

	// Millisecond epochs passed 1e12 long before second epochs will.
	if epoch > 1_000_000_000_000 {
		return time.UnixMilli(epoch), nil
	}

	return time.Unix(epoch, 0), nil
}
