package entity

import (
	"context"

	"github.com/homequest/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&DayTaskSummary{},
		&EarnedBadge{},
		&CoinBalance{},
		&CoinTransaction{},
	)
}
