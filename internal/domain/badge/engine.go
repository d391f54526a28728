package badge

import (
	"time"

	"github.com/google/uuid"
	"github.com/homequest/backend/internal/common"
	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/pkg/dateutil"
)

// Engine replays a user's full history against the catalog. It holds no
// mutable state, so one engine can serve concurrent evaluations for any
// number of users.
type Engine struct {
	catalog []Definition
}

func NewEngine(catalog []Definition) *Engine {
	return &Engine{catalog: catalog}
}

func (e *Engine) Catalog() []Definition {
	return e.catalog
}

type dayAward struct {
	badgeID string
	date    dateutil.Date
}

// Evaluate reconstructs the complete earned-badge set from scratch. Given the
// same history, two calls produce the same awards in the same order: days
// ascending, catalog order within a day. Only the EarnedAt of awards on the
// caller's today carries the wall clock; every other award gets the start of
// its day. Callers that persist the result diff it against the stored set
// themselves.
func (e *Engine) Evaluate(
	userID string,
	history, siblingHistory History,
	today dateutil.Date,
	now time.Time,
) []entity.EarnedBadge {
	dates := common.SortedMapKeys(history, func(a, b dateutil.Date) bool {
		return a.Before(b)
	})

	earnedOnce := map[string]struct{}{}
	earnedOnDay := map[dayAward]struct{}{}

	var result []entity.EarnedBadge
	for _, date := range dates {
		bctx := BuildContext(history, siblingHistory, date, date == today)

		for _, def := range e.catalog {
			if !def.Repeatable() {
				if _, ok := earnedOnce[def.ID()]; ok {
					continue
				}
			} else if _, ok := earnedOnDay[dayAward{def.ID(), date}]; ok {
				continue
			}

			if !def.Check(bctx) {
				continue
			}

			earnedAt := date.Time(now.Location())
			if date == today {
				earnedAt = now
			}

			result = append(result, entity.EarnedBadge{
				ID:         uuid.NewString(),
				BadgeID:    def.ID(),
				UserID:     userID,
				EarnedAt:   earnedAt,
				EarnedDate: date,
			})

			if def.Repeatable() {
				earnedOnDay[dayAward{def.ID(), date}] = struct{}{}
			} else {
				earnedOnce[def.ID()] = struct{}{}
			}
		}
	}

	return result
}
