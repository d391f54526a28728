package entity

import (
	"time"

	"github.com/homequest/backend/pkg/dateutil"
	"github.com/homequest/backend/pkg/enum"
)

type BadgeGrade string

var (
	GradeCommon    = enum.New(BadgeGrade("common"))
	GradeRare      = enum.New(BadgeGrade("rare"))
	GradeEpic      = enum.New(BadgeGrade("epic"))
	GradeLegendary = enum.New(BadgeGrade("legendary"))
)

// GradeRank orders grades for presentation. Higher is rarer.
func GradeRank(g BadgeGrade) int {
	switch g {
	case GradeCommon:
		return 0
	case GradeRare:
		return 1
	case GradeEpic:
		return 2
	case GradeLegendary:
		return 3
	}

	return -1
}

type BadgeCategory string

var (
	CategoryDaily     = enum.New(BadgeCategory("daily"))
	CategoryStreak    = enum.New(BadgeCategory("streak"))
	CategoryMilestone = enum.New(BadgeCategory("milestone"))
	CategoryWeekly    = enum.New(BadgeCategory("weekly"))
	CategorySpecial   = enum.New(BadgeCategory("special"))
)

// EarnedBadge is one badge award. Non-repeatable badges have at most one row
// per (badge, user); repeatable badges at most one per (badge, user, day).
// Rows are only ever inserted or wholly replaced by a recompute, never
// updated in place. No soft delete here: a recompute hard-deletes the old
// set, and soft-deleted rows would trip the unique index on the rewrite.
type EarnedBadge struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time

	BadgeID string `gorm:"uniqueIndex:idx_earned_badge_day,priority:1"`

	UserID string `gorm:"uniqueIndex:idx_earned_badge_day,priority:2"`
	User   User   `gorm:"foreignKey:UserID"`

	EarnedAt   time.Time
	EarnedDate dateutil.Date `gorm:"uniqueIndex:idx_earned_badge_day,priority:3;type:varchar(10)"`
}
