package badge

import (
	"github.com/homequest/backend/internal/entity"
)

// Definition is one catalog entry. Implementations must be immutable after
// construction and Check must be a total, side-effect-free function of the
// context: no definition may read global state or another definition's
// outcome.
type Definition interface {
	// ID returns the stable key of the badge.
	ID() string

	Grade() entity.BadgeGrade
	Category() entity.BadgeCategory

	// Repeatable reports whether the badge can be earned once per calendar
	// day instead of once ever.
	Repeatable() bool

	// Hidden marks special badges that stay undiscovered until earned.
	Hidden() bool

	// Check detects whether the badge is earned for the given day.
	Check(bctx Context) bool
}
