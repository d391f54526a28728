package testutil

import (
	"github.com/homequest/backend/internal/domain/badge"
	"github.com/homequest/backend/internal/entity"
)

// MockBadge is a catalog definition with an injectable condition, used to
// evaluate against reduced catalogs in tests.
type MockBadge struct {
	IDValue         string
	GradeValue      entity.BadgeGrade
	CategoryValue   entity.BadgeCategory
	RepeatableValue bool
	HiddenValue     bool
	CheckFunc       func(bctx badge.Context) bool
}

func (b *MockBadge) ID() string {
	return b.IDValue
}

func (b *MockBadge) Grade() entity.BadgeGrade {
	if b.GradeValue == "" {
		return entity.GradeCommon
	}

	return b.GradeValue
}

func (b *MockBadge) Category() entity.BadgeCategory {
	if b.CategoryValue == "" {
		return entity.CategorySpecial
	}

	return b.CategoryValue
}

func (b *MockBadge) Repeatable() bool {
	return b.RepeatableValue
}

func (b *MockBadge) Hidden() bool {
	return b.HiddenValue
}

func (b *MockBadge) Check(bctx badge.Context) bool {
	if b.CheckFunc != nil {
		return b.CheckFunc(bctx)
	}

	return false
}
