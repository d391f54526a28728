package badge

import (
	"github.com/homequest/backend/internal/entity"
)

// DefaultCatalog returns the built-in ordered catalog. The slice is rebuilt
// on every call, so callers may not share or mutate it; evaluation walks it
// in this order.
func DefaultCatalog() []Definition {
	return []Definition{
		// Daily badges.
		&firstTasksBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "first_step",
				BadgeGrade:    entity.GradeCommon,
				BadgeCategory: entity.CategoryDaily,
			},
			Count: 1,
		},
		&allClearBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "all_clear",
				BadgeGrade:    entity.GradeCommon,
				BadgeCategory: entity.CategoryDaily,
				IsRepeatable:  true,
			},
		},

		// Streak badges.
		&streakBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "streak_3",
				BadgeGrade:    entity.GradeCommon,
				BadgeCategory: entity.CategoryStreak,
			},
			Days: 3,
		},
		&streakBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "streak_7",
				BadgeGrade:    entity.GradeRare,
				BadgeCategory: entity.CategoryStreak,
			},
			Days: 7,
		},
		&streakBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "streak_14",
				BadgeGrade:    entity.GradeEpic,
				BadgeCategory: entity.CategoryStreak,
			},
			Days: 14,
		},
		&streakBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "streak_30",
				BadgeGrade:    entity.GradeLegendary,
				BadgeCategory: entity.CategoryStreak,
			},
			Days: 30,
		},

		// Milestone badges.
		&totalCompletedBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "tasks_10",
				BadgeGrade:    entity.GradeCommon,
				BadgeCategory: entity.CategoryMilestone,
			},
			Count: 10,
		},
		&totalCompletedBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "tasks_50",
				BadgeGrade:    entity.GradeRare,
				BadgeCategory: entity.CategoryMilestone,
			},
			Count: 50,
		},
		&totalCompletedBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "tasks_100",
				BadgeGrade:    entity.GradeEpic,
				BadgeCategory: entity.CategoryMilestone,
			},
			Count: 100,
		},
		&totalCompletedBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "tasks_500",
				BadgeGrade:    entity.GradeLegendary,
				BadgeCategory: entity.CategoryMilestone,
			},
			Count: 500,
		},
		&perfectDaysBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "perfect_5",
				BadgeGrade:    entity.GradeRare,
				BadgeCategory: entity.CategoryMilestone,
			},
			Count: 5,
		},
		&perfectDaysBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "perfect_20",
				BadgeGrade:    entity.GradeEpic,
				BadgeCategory: entity.CategoryMilestone,
			},
			Count: 20,
		},
		&activeDaysBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "active_30",
				BadgeGrade:    entity.GradeRare,
				BadgeCategory: entity.CategoryMilestone,
			},
			Count: 30,
		},

		// Weekly badges.
		&weeklyRateBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "good_week",
				BadgeGrade:    entity.GradeRare,
				BadgeCategory: entity.CategoryWeekly,
				IsRepeatable:  true,
			},
			MinRate: 0.8,
		},
		&weeklyRateBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "perfect_week",
				BadgeGrade:    entity.GradeEpic,
				BadgeCategory: entity.CategoryWeekly,
				IsRepeatable:  true,
			},
			MinRate: 1,
		},

		// Special badges.
		&weekendClearBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "weekend_warrior",
				BadgeGrade:    entity.GradeRare,
				BadgeCategory: entity.CategorySpecial,
				IsRepeatable:  true,
			},
		},
		&comebackBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "comeback",
				BadgeGrade:    entity.GradeRare,
				BadgeCategory: entity.CategorySpecial,
				IsHidden:      true,
			},
		},
		&siblingHarmonyBadge{
			baseDefinition: baseDefinition{
				BadgeID:       "sibling_harmony",
				BadgeGrade:    entity.GradeEpic,
				BadgeCategory: entity.CategorySpecial,
				IsRepeatable:  true,
				IsHidden:      true,
			},
		},
	}
}
