package schedule

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/exp/slog"

	"github.com/jayarAsio/stl-gaming-system-sub001/internal/config"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/model"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/lib/logger/sl"
)

var (
	ErrBadDrawTime         = errors.New("draw time is not in HH:MM form")
	ErrUnknownGame         = errors.New("game is not in today's schedule")
	ErrUnknownDraw         = errors.New("game has no draw at that time")
	ErrDrawNotCompleted    = errors.New("draw has not happened yet")
	ErrResultAlreadyPosted = errors.New("draw result is already posted")
	ErrEmptyResult         = errors.New("draw result must not be empty")
)

// Source builds the day's schedule from configuration and hands out
// snapshots of it. Schedules are day-scoped: draw times are anchored to
// the calendar day of the requesting instant, so a day rollover yields a
// fresh build while the previous day's entry ages out of the cache.
type Source struct {
	mu    sync.RWMutex
	games []config.GameConfig
	cache *cache.Cache
	log   *slog.Logger
}

func NewSource(cfg config.ScheduleConfig, log *slog.Logger) *Source {
	return &Source{
		games: cfg.Games,
		cache: cache.New(48*time.Hour, time.Hour),
		log:   log,
	}
}

// Today returns a snapshot of the schedule for the calendar day of now.
// Callers own the returned value; mutating it does not touch the source.
func (s *Source) Today(now time.Time) (*model.Schedule, error) {
	const op = "schedule.Source.Today"

	s.mu.Lock()
	defer s.mu.Unlock()

	sched, err := s.todayLocked(now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return snapshot(sched), nil
}

// PostResult records the result string for one draw. The draw must exist,
// must already be completed at postedAt, and must not carry a result yet.
func (s *Source) PostResult(game string, drawTime time.Time, result string, postedAt time.Time) error {
	const op = "schedule.Source.PostResult"

	if result == "" {
		return fmt.Errorf("%s: %w", op, ErrEmptyResult)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sched, err := s.todayLocked(postedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	draw, err := findDraw(sched, game, drawTime)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if Status(*draw, postedAt) != model.DrawCompleted {
		return fmt.Errorf("%s: %w", op, ErrDrawNotCompleted)
	}

	if draw.Result != nil {
		return fmt.Errorf("%s: %w", op, ErrResultAlreadyPosted)
	}

	draw.Result = &result

	s.log.Info("draw result posted",
		sl.String("game", game),
		sl.String("draw_time", drawTime.Format("15:04")),
		sl.String("result", result))

	return nil
}

func (s *Source) todayLocked(now time.Time) (*model.Schedule, error) {
	dayKey := now.Format("2006-01-02")

	if cached, found := s.cache.Get(dayKey); found {
		return cached.(*model.Schedule), nil
	}

	sched, err := s.build(now)
	if err != nil {
		return nil, err
	}

	s.cache.Set(dayKey, sched, cache.DefaultExpiration)

	s.log.Info("schedule built", sl.String("day", dayKey), sl.Int("games", len(sched.Games)))

	return sched, nil
}

func (s *Source) build(now time.Time) (*model.Schedule, error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	sched := &model.Schedule{
		Day:   day,
		Games: make([]model.Game, 0, len(s.games)),
	}

	for _, gameCfg := range s.games {
		game := model.Game{
			Name:  gameCfg.Name,
			Draws: make([]model.Draw, 0, len(gameCfg.DrawTimes)),
		}

		for _, drawTime := range gameCfg.DrawTimes {
			parsed, err := time.Parse("15:04", drawTime)
			if err != nil {
				return nil, fmt.Errorf("game %s, draw %q: %w", gameCfg.Name, drawTime, ErrBadDrawTime)
			}

			game.Draws = append(game.Draws, model.Draw{
				ScheduledTime: day.Add(
					time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute),
			})
		}

		sched.Games = append(sched.Games, game)
	}

	return sched, nil
}

func findDraw(sched *model.Schedule, game string, drawTime time.Time) (*model.Draw, error) {
	for i := range sched.Games {
		if sched.Games[i].Name != game {
			continue
		}

		for j := range sched.Games[i].Draws {
			draw := &sched.Games[i].Draws[j]

			if draw.ScheduledTime.Equal(drawTime) {
				return draw, nil
			}
		}

		return nil, ErrUnknownDraw
	}

	return nil, ErrUnknownGame
}

func snapshot(sched *model.Schedule) *model.Schedule {
	copied := &model.Schedule{
		Day:   sched.Day,
		Games: make([]model.Game, len(sched.Games)),
	}

	for i, game := range sched.Games {
		draws := make([]model.Draw, len(game.Draws))

		for j, draw := range game.Draws {
			draws[j] = model.Draw{ScheduledTime: draw.ScheduledTime}

			if draw.Result != nil {
				result := *draw.Result
				draws[j].Result = &result
			}
		}

		copied.Games[i] = model.Game{Name: game.Name, Draws: draws}
	}

	return copied
}
