package badge

import (
	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/pkg/enum"
)

type definitionType string

var (
	firstTasksType     = enum.New(definitionType("first_tasks"))
	allClearType       = enum.New(definitionType("all_clear"))
	streakType         = enum.New(definitionType("streak"))
	totalCompletedType = enum.New(definitionType("total_completed"))
	perfectDaysType    = enum.New(definitionType("perfect_days"))
	activeDaysType     = enum.New(definitionType("active_days"))
	weeklyRateType     = enum.New(definitionType("weekly_rate"))
	siblingHarmonyType = enum.New(definitionType("sibling_harmony"))
	comebackType       = enum.New(definitionType("comeback"))
	weekendClearType   = enum.New(definitionType("weekend_clear"))
)

type baseDefinition struct {
	BadgeID       string               `mapstructure:"id" structs:"id"`
	BadgeGrade    entity.BadgeGrade    `mapstructure:"grade" structs:"grade"`
	BadgeCategory entity.BadgeCategory `mapstructure:"category" structs:"category"`
	IsRepeatable  bool                 `mapstructure:"repeatable" structs:"repeatable"`
	IsHidden      bool                 `mapstructure:"hidden" structs:"hidden"`
}

func (b baseDefinition) ID() string {
	return b.BadgeID
}

func (b baseDefinition) Grade() entity.BadgeGrade {
	return b.BadgeGrade
}

func (b baseDefinition) Category() entity.BadgeCategory {
	return b.BadgeCategory
}

func (b baseDefinition) Repeatable() bool {
	return b.IsRepeatable
}

func (b baseDefinition) Hidden() bool {
	return b.IsHidden
}

// firstTasksBadge is earned when the user completes at least Count tasks in
// one day.
type firstTasksBadge struct {
	baseDefinition `mapstructure:",squash" structs:",flatten"`

	Count int `mapstructure:"count" structs:"count"`
}

func (b firstTasksBadge) Check(bctx Context) bool {
	return bctx.TodayCompleted >= b.Count
}

// allClearBadge is earned when every task of the day is complete.
type allClearBadge struct {
	baseDefinition `mapstructure:",squash" structs:",flatten"`
}

func (b allClearBadge) Check(bctx Context) bool {
	return bctx.TodayTotal > 0 && bctx.TodayRate == 1
}

// streakBadge is earned when the all-complete streak reaches Days.
type streakBadge struct {
	baseDefinition `mapstructure:",squash" structs:",flatten"`

	Days int `mapstructure:"days" structs:"days"`
}

func (b streakBadge) Check(bctx Context) bool {
	return bctx.Streak >= b.Days
}

// totalCompletedBadge is earned when the lifetime completed-task count
// reaches Count.
type totalCompletedBadge struct {
	baseDefinition `mapstructure:",squash" structs:",flatten"`

	Count int `mapstructure:"count" structs:"count"`
}

func (b totalCompletedBadge) Check(bctx Context) bool {
	return bctx.TotalCompleted >= b.Count
}

type perfectDaysBadge struct {
	baseDefinition `mapstructure:",squash" structs:",flatten"`

	Count int `mapstructure:"count" structs:"count"`
}

func (b perfectDaysBadge) Check(bctx Context) bool {
	return bctx.TotalPerfectDays >= b.Count
}

type activeDaysBadge struct {
	baseDefinition `mapstructure:",squash" structs:",flatten"`

	Count int `mapstructure:"count" structs:"count"`
}

func (b activeDaysBadge) Check(bctx Context) bool {
	return bctx.TotalActiveDays >= b.Count
}

// weeklyRateBadge checks the closed calendar week. It only fires on Sundays,
// when the week rate window ends on the day itself, so a repeatable weekly
// badge is earned at most once per week.
type weeklyRateBadge struct {
	baseDefinition `mapstructure:",squash" structs:",flatten"`

	MinRate float64 `mapstructure:"min_rate" structs:"min_rate"`
}

func (b weeklyRateBadge) Check(bctx Context) bool {
	return bctx.DayOfWeek == 0 && bctx.WeekRate > 0 && bctx.WeekRate >= b.MinRate
}

// siblingHarmonyBadge is earned when both household members finish all their
// tasks on the same day.
type siblingHarmonyBadge struct {
	baseDefinition `mapstructure:",squash" structs:",flatten"`
}

func (b siblingHarmonyBadge) Check(bctx Context) bool {
	return bctx.TodayTotal > 0 && bctx.TodayRate == 1 && bctx.SiblingTodayRate == 1
}

// comebackBadge is earned on a full-clear day right after a day with nothing
// done.
type comebackBadge struct {
	baseDefinition `mapstructure:",squash" structs:",flatten"`
}

func (b comebackBadge) Check(bctx Context) bool {
	return bctx.TodayTotal > 0 && bctx.TodayRate == 1 && bctx.YesterdayRate == 0 && bctx.TotalActiveDays > 1
}

// weekendClearBadge is earned by finishing everything on a Saturday or
// Sunday.
type weekendClearBadge struct {
	baseDefinition `mapstructure:",squash" structs:",flatten"`
}

func (b weekendClearBadge) Check(bctx Context) bool {
	if bctx.DayOfWeek != 0 && bctx.DayOfWeek != 6 {
		return false
	}

	return bctx.TodayTotal > 0 && bctx.TodayRate == 1
}
