package badge

import (
	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/pkg/dateutil"
	"github.com/homequest/backend/pkg/errorx"
)

// Context carries the numeric facts a badge condition may read for one
// (user, day) pair. It is derived from history on every evaluation and never
// persisted. All rate fields stay in [0,1].
type Context struct {
	TodayTotal     int
	TodayCompleted int
	TodayRate      float64

	// Streak counts consecutive all-complete days ending at the context day
	// inclusive. It is 0 when the day itself is not all-complete.
	Streak int

	TotalCompleted   int
	TotalPerfectDays int
	TotalActiveDays  int

	// WeekRate aggregates the 7-day window ending at the most recent Sunday
	// on or before the context day, i.e. the last closed calendar week.
	WeekRate float64

	SiblingTodayRate float64
	YesterdayRate    float64

	// DayOfWeek is 0 for Sunday through 6 for Saturday.
	DayOfWeek int

	IsToday bool
}

// History maps calendar days to that day's summary for one user.
type History map[dateutil.Date]entity.DayTaskSummary

// NewHistory indexes summaries by day and validates their counting
// invariants. A malformed summary (completed > total, or a task list that
// disagrees with the completed count) is rejected outright rather than
// clamped, so conditions comparing rates against 1.0 never see garbage.
func NewHistory(summaries []entity.DayTaskSummary) (History, error) {
	history := make(History, len(summaries))
	for _, s := range summaries {
		if !s.IsValid() {
			return nil, errorx.New(errorx.BadRequest,
				"Invalid day summary on %s: completed=%d total=%d", s.Date, s.Completed, s.Total)
		}

		history[s.Date] = s
	}

	return history, nil
}

// BuildContext derives the facts for one day. It is a pure function of its
// inputs. A day missing from history yields zero rates and totals based on
// whatever history exists before it.
func BuildContext(history, siblingHistory History, date dateutil.Date, isToday bool) Context {
	bctx := Context{DayOfWeek: date.Weekday(), IsToday: isToday}

	if today, ok := history[date]; ok {
		bctx.TodayTotal = today.Total
		bctx.TodayCompleted = today.Completed
		bctx.TodayRate = today.Rate()
	}

	for d := date; ; d = d.Prev() {
		summary, ok := history[d]
		if !ok || !summary.IsPerfect() {
			break
		}

		bctx.Streak++
	}

	for d, summary := range history {
		if d.After(date) {
			continue
		}

		bctx.TotalCompleted += summary.Completed
		if summary.IsPerfect() {
			bctx.TotalPerfectDays++
		}

		if summary.IsActive() {
			bctx.TotalActiveDays++
		}
	}

	weekEnd := dateutil.LastSundayOnOrBefore(date)
	weekTotal, weekCompleted := 0, 0
	for d := weekEnd.AddDays(-6); !d.After(weekEnd); d = d.Next() {
		if summary, ok := history[d]; ok {
			weekTotal += summary.Total
			weekCompleted += summary.Completed
		}
	}

	if weekTotal > 0 {
		bctx.WeekRate = float64(weekCompleted) / float64(weekTotal)
	}

	if summary, ok := siblingHistory[date]; ok {
		bctx.SiblingTodayRate = summary.Rate()
	}

	if summary, ok := history[date.Prev()]; ok {
		bctx.YesterdayRate = summary.Rate()
	}

	return bctx
}
