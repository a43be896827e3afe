package schedule

import (
	"testing"
	"time"

	"github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/model"
)

var drawAt = time.Date(2024, 3, 11, 14, 0, 0, 0, time.UTC)

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want model.DrawStatus
	}{
		{
			name: "BeforeDraw",
			now:  drawAt.Add(-time.Minute),
			want: model.DrawUpcoming,
		},
		{
			name: "ExactlyAtDraw",
			now:  drawAt,
			want: model.DrawCompleted,
		},
		{
			name: "AfterDraw",
			now:  drawAt.Add(time.Minute),
			want: model.DrawCompleted,
		},
		{
			name: "OneSecondBefore",
			now:  drawAt.Add(-time.Second),
			want: model.DrawUpcoming,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Status(model.Draw{ScheduledTime: drawAt}, tc.now)
			if got != tc.want {
				t.Errorf("unexpected status, want: %s, got: %s", tc.want, got)
			}
		})
	}
}

func TestStatusMonotonic(t *testing.T) {
	draw := model.Draw{ScheduledTime: drawAt}

	completed := false
	for now := drawAt.Add(-2 * time.Minute); now.Before(drawAt.Add(2 * time.Minute)); now = now.Add(10 * time.Second) {
		status := Status(draw, now)

		if completed && status != model.DrawCompleted {
			t.Fatalf("draw reverted to %s at %s", status, now)
		}

		if status == model.DrawCompleted {
			completed = true
		}
	}

	if !completed {
		t.Fatal("draw never completed")
	}
}

func TestNextDraw(t *testing.T) {
	game := model.Game{
		Name: "Swertres",
		Draws: []model.Draw{
			{ScheduledTime: time.Date(2024, 3, 11, 21, 0, 0, 0, time.UTC)},
			{ScheduledTime: time.Date(2024, 3, 11, 14, 0, 0, 0, time.UTC)},
			{ScheduledTime: time.Date(2024, 3, 11, 17, 0, 0, 0, time.UTC)},
		},
	}

	cases := []struct {
		name string
		now  time.Time
		want *time.Time
	}{
		{
			name: "MorningPicksEarliest",
			now:  time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC),
			want: timePtr(time.Date(2024, 3, 11, 14, 0, 0, 0, time.UTC)),
		},
		{
			name: "AfternoonSkipsCompleted",
			now:  time.Date(2024, 3, 11, 15, 0, 0, 0, time.UTC),
			want: timePtr(time.Date(2024, 3, 11, 17, 0, 0, 0, time.UTC)),
		},
		{
			name: "EveningExhausted",
			now:  time.Date(2024, 3, 11, 22, 0, 0, 0, time.UTC),
			want: nil,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := NextDraw(game, tc.now)

			if tc.want == nil {
				if got != nil {
					t.Errorf("expected no next draw, got: %s", got.ScheduledTime)
				}

				return
			}

			if got == nil {
				t.Fatalf("expected next draw at %s, got none", *tc.want)
			}

			if !got.ScheduledTime.Equal(*tc.want) {
				t.Errorf("unexpected next draw, want: %s, got: %s", *tc.want, got.ScheduledTime)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
