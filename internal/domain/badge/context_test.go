package badge

import (
	"testing"
	"time"

	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/pkg/dateutil"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) dateutil.Date {
	return dateutil.NewDate(year, month, d)
}

func summary(date dateutil.Date, total, completed int) entity.DayTaskSummary {
	return entity.DayTaskSummary{Date: date, Total: total, Completed: completed}
}

func mustHistory(t *testing.T, summaries ...entity.DayTaskSummary) History {
	t.Helper()
	history, err := NewHistory(summaries)
	require.NoError(t, err)
	return history
}

func TestNewHistoryRejectsMalformedSummary(t *testing.T) {
	_, err := NewHistory([]entity.DayTaskSummary{
		summary(day(2024, time.May, 1), 2, 3),
	})
	require.Error(t, err)

	_, err = NewHistory([]entity.DayTaskSummary{
		{
			Date:      day(2024, time.May, 1),
			Total:     2,
			Completed: 2,
			Tasks:     entity.Array[entity.TaskCompletion]{{Completed: true}, {Completed: false}},
		},
	})
	require.Error(t, err)
}

func TestBuildContextTodayRate(t *testing.T) {
	d := day(2024, time.May, 15)
	history := mustHistory(t, summary(d, 4, 3))

	bctx := BuildContext(history, nil, d, true)
	require.Equal(t, 4, bctx.TodayTotal)
	require.Equal(t, 3, bctx.TodayCompleted)
	require.Equal(t, 0.75, bctx.TodayRate)
	require.True(t, bctx.IsToday)
	require.Equal(t, 3, bctx.DayOfWeek) // a Wednesday
}

func TestBuildContextEmptyDayHasZeroRates(t *testing.T) {
	d := day(2024, time.May, 15)
	history := mustHistory(t, summary(d.Prev().Prev(), 2, 2))

	bctx := BuildContext(history, nil, d, false)
	require.Zero(t, bctx.TodayRate)
	require.Zero(t, bctx.TodayTotal)
	require.Zero(t, bctx.YesterdayRate)
	require.Zero(t, bctx.SiblingTodayRate)
	require.Equal(t, 2, bctx.TotalCompleted)
	require.Equal(t, 1, bctx.TotalPerfectDays)
}

func TestBuildContextStreak(t *testing.T) {
	d := day(2024, time.May, 15)
	history := mustHistory(t,
		summary(d.AddDays(-3), 2, 1), // breaks the streak
		summary(d.AddDays(-2), 2, 2),
		summary(d.AddDays(-1), 3, 3),
		summary(d, 1, 1),
	)

	bctx := BuildContext(history, nil, d, true)
	require.Equal(t, 3, bctx.Streak)

	// The streak is 0 when the day itself is not all-complete.
	next := d.Next()
	history[next] = summary(next, 2, 1)
	require.Zero(t, BuildContext(history, nil, next, true).Streak)
}

func TestBuildContextStreakStopsAtMissingDay(t *testing.T) {
	d := day(2024, time.May, 15)
	history := mustHistory(t,
		summary(d.AddDays(-2), 2, 2),
		// -1 missing
		summary(d, 2, 2),
	)

	require.Equal(t, 1, BuildContext(history, nil, d, true).Streak)
}

func TestBuildContextZeroTotalDayIsNotPerfect(t *testing.T) {
	d := day(2024, time.May, 15)
	history := mustHistory(t,
		summary(d.Prev(), 0, 0),
		summary(d, 2, 2),
	)

	bctx := BuildContext(history, nil, d, true)
	require.Equal(t, 1, bctx.Streak)
	require.Equal(t, 1, bctx.TotalPerfectDays)
	require.Equal(t, 1, bctx.TotalActiveDays)
}

func TestBuildContextTotalsIgnoreFutureDays(t *testing.T) {
	d := day(2024, time.May, 15)
	history := mustHistory(t,
		summary(d, 2, 2),
		summary(d.Next(), 5, 5),
	)

	bctx := BuildContext(history, nil, d, false)
	require.Equal(t, 2, bctx.TotalCompleted)
	require.Equal(t, 1, bctx.TotalPerfectDays)
}

func TestBuildContextWeekRate(t *testing.T) {
	// 2024-05-12 is a Sunday; the closed week is 05-06 .. 05-12.
	sunday := day(2024, time.May, 12)
	history := mustHistory(t,
		summary(sunday.AddDays(-6), 4, 4),
		summary(sunday.AddDays(-3), 4, 2),
		summary(sunday, 2, 0),
	)

	// Evaluated on the Sunday itself, the window ends today.
	bctx := BuildContext(history, nil, sunday, true)
	require.Equal(t, 0.6, bctx.WeekRate)

	// Evaluated midweek after, the window still covers the closed week.
	bctx = BuildContext(history, nil, sunday.AddDays(3), true)
	require.Equal(t, 0.6, bctx.WeekRate)

	// A week with no data at all yields 0, not NaN.
	bctx = BuildContext(history, nil, sunday.AddDays(14), true)
	require.Zero(t, bctx.WeekRate)
}

func TestBuildContextSiblingAndYesterdayRate(t *testing.T) {
	d := day(2024, time.May, 15)
	history := mustHistory(t,
		summary(d.Prev(), 4, 1),
		summary(d, 2, 2),
	)
	sibling := mustHistory(t, summary(d, 3, 3))

	bctx := BuildContext(history, sibling, d, true)
	require.Equal(t, 0.25, bctx.YesterdayRate)
	require.Equal(t, 1.0, bctx.SiblingTodayRate)
}

func TestBuildContextRateBounds(t *testing.T) {
	d := day(2024, time.May, 15)
	history := mustHistory(t,
		summary(d.Prev(), 7, 3),
		summary(d, 9, 9),
	)

	bctx := BuildContext(history, history, d, true)
	for _, rate := range []float64{bctx.TodayRate, bctx.WeekRate, bctx.SiblingTodayRate, bctx.YesterdayRate} {
		require.GreaterOrEqual(t, rate, 0.0)
		require.LessOrEqual(t, rate, 1.0)
	}
}
