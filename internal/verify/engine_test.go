package verify

import (
	"io"
	"reflect"
	"testing"
	"time"

	"golang.org/x/exp/slog"

	"github.com/jayarAsio/stl-gaming-system-sub001/internal/config"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/model"
)

var (
	day     = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	twoPM   = day.Add(14 * time.Hour)
	fivePM  = day.Add(17 * time.Hour)
	evening = day.Add(19 * time.Hour)
)

func testEngine() *Engine {
	payout := NewPayoutCalculator(config.PayoutConfig{
		Multipliers:       map[string]float64{"Swertres": 500, "EZ2": 70},
		DefaultMultiplier: 100,
	})

	return NewEngine(payout, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func strPtr(s string) *string {
	return &s
}

func swertresSchedule(twoPMResult, fivePMResult *string) *model.Schedule {
	return &model.Schedule{
		Day: day,
		Games: []model.Game{
			{
				Name: "Swertres",
				Draws: []model.Draw{
					{ScheduledTime: twoPM, Result: twoPMResult},
					{ScheduledTime: fivePM, Result: fivePMResult},
				},
			},
		},
	}
}

func swertresTicket(verified bool) *model.Ticket {
	return &model.Ticket{
		ID:        "T1",
		Timestamp: day.Add(10 * time.Hour),
		Total:     10,
		Verified:  verified,
		Bets: []model.Bet{
			{Game: "Swertres", Combo: "1-2-3", Amount: 10},
		},
	}
}

func TestVerifyWinningTicket(t *testing.T) {
	engine := testEngine()

	outcome, err := engine.Verify(swertresTicket(true), swertresSchedule(strPtr("123"), nil), evening)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !outcome.Authentic {
		t.Error("expected an authentic verdict")
	}

	if len(outcome.Results) != 1 {
		t.Fatalf("unexpected result count: %d", len(outcome.Results))
	}

	result := outcome.Results[0]

	if !result.IsWinner {
		t.Error("expected a winning result")
	}

	if result.Payout != 5000 {
		t.Errorf("unexpected payout, want: 5000, got: %f", result.Payout)
	}

	if result.Game != "Swertres" || result.Combo != "1-2-3" || result.Amount != 10 {
		t.Errorf("unexpected result fields: %+v", result)
	}

	if result.DrawTime != "2:00 PM" {
		t.Errorf("unexpected draw time display: %s", result.DrawTime)
	}

	if result.DrawResult != "123" {
		t.Errorf("unexpected draw result: %s", result.DrawResult)
	}
}

func TestVerifyLosingTicket(t *testing.T) {
	engine := testEngine()

	outcome, err := engine.Verify(swertresTicket(true), swertresSchedule(strPtr("1-2-4"), nil), evening)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(outcome.Results) != 1 {
		t.Fatalf("unexpected result count: %d", len(outcome.Results))
	}

	if outcome.Results[0].IsWinner {
		t.Error("expected a losing result")
	}

	if outcome.Results[0].Payout != 0 {
		t.Errorf("losing bet must pay zero, got: %f", outcome.Results[0].Payout)
	}
}

func TestVerifySkipsPendingDraws(t *testing.T) {
	engine := testEngine()

	// before either draw: nothing to report, winning combo or not
	outcome, err := engine.Verify(swertresTicket(true), swertresSchedule(strPtr("123"), nil), day.Add(13*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(outcome.Results) != 0 {
		t.Errorf("pending draws contributed results: %d", len(outcome.Results))
	}
}

func TestVerifySkipsCompletedDrawWithoutResult(t *testing.T) {
	engine := testEngine()

	outcome, err := engine.Verify(swertresTicket(true), swertresSchedule(nil, nil), evening)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(outcome.Results) != 0 {
		t.Errorf("draws without posted results contributed results: %d", len(outcome.Results))
	}
}

func TestVerifyUnverifiedTicketStaysUnauthentic(t *testing.T) {
	engine := testEngine()

	outcome, err := engine.Verify(swertresTicket(false), swertresSchedule(strPtr("123"), nil), evening)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome.Authentic {
		t.Error("an unverified ticket must not be reported authentic")
	}

	// authenticity and win-checking are independent verdicts
	if len(outcome.Results) != 1 || !outcome.Results[0].IsWinner {
		t.Error("win evaluation must proceed regardless of authenticity")
	}
}

func TestVerifySkipsUnresolvedGames(t *testing.T) {
	engine := testEngine()

	scanned := &model.Ticket{
		ID:       "T2",
		Verified: true,
		Bets: []model.Bet{
			{Game: "Mega Lotto", Combo: "1-2-3", Amount: 10},
			{Game: "Swertres", Combo: "1-2-3", Amount: 10},
		},
	}

	outcome, err := engine.Verify(scanned, swertresSchedule(strPtr("123"), nil), evening)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(outcome.Results) != 1 {
		t.Fatalf("unexpected result count: %d", len(outcome.Results))
	}

	if outcome.Results[0].Game != "Swertres" {
		t.Errorf("unexpected game in results: %s", outcome.Results[0].Game)
	}
}

func TestVerifyIsDeterministic(t *testing.T) {
	engine := testEngine()
	sched := swertresSchedule(strPtr("123"), strPtr("456"))
	scanned := swertresTicket(true)

	first, err := engine.Verify(scanned, sched, evening)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := engine.Verify(scanned, sched, evening)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different outcomes")
	}
}

func TestVerifyResultsGrowMonotonically(t *testing.T) {
	engine := testEngine()
	sched := swertresSchedule(strPtr("123"), strPtr("456"))
	scanned := swertresTicket(true)

	afterFirst, err := engine.Verify(scanned, sched, day.Add(15*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	afterBoth, err := engine.Verify(scanned, sched, evening)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(afterFirst.Results) != 1 || len(afterBoth.Results) != 2 {
		t.Fatalf("unexpected result counts: %d then %d", len(afterFirst.Results), len(afterBoth.Results))
	}

	// earlier results are never retracted or altered as now advances
	if !reflect.DeepEqual(afterFirst.Results[0], afterBoth.Results[0]) {
		t.Error("an earlier result changed as the clock advanced")
	}
}

func TestVerifyPreservesBetThenDrawOrder(t *testing.T) {
	engine := testEngine()

	sched := &model.Schedule{
		Day: day,
		Games: []model.Game{
			{
				Name: "Swertres",
				Draws: []model.Draw{
					{ScheduledTime: twoPM, Result: strPtr("123")},
					{ScheduledTime: fivePM, Result: strPtr("456")},
				},
			},
			{
				Name: "EZ2",
				Draws: []model.Draw{
					{ScheduledTime: twoPM, Result: strPtr("07-21")},
				},
			},
		},
	}

	scanned := &model.Ticket{
		ID:       "T3",
		Verified: true,
		Bets: []model.Bet{
			{Game: "EZ2", Combo: "07-21", Amount: 5},
			{Game: "Swertres", Combo: "1-2-3", Amount: 10},
		},
	}

	outcome, err := engine.Verify(scanned, sched, evening)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{"EZ2", "Swertres", "Swertres"}

	if len(outcome.Results) != len(wantOrder) {
		t.Fatalf("unexpected result count: %d", len(outcome.Results))
	}

	for i, want := range wantOrder {
		if outcome.Results[i].Game != want {
			t.Errorf("result %d out of order, want: %s, got: %s", i, want, outcome.Results[i].Game)
		}
	}

	// Swertres results follow the game's authored draw order
	if outcome.Results[1].DrawResult != "123" || outcome.Results[2].DrawResult != "456" {
		t.Error("draw results are out of authored order")
	}
}
