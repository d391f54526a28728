package testutil

import (
	"context"

	"github.com/homequest/backend/config"
	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/pkg/logger"
	"github.com/homequest/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockContext returns a context carrying a fresh in-memory database with the
// schema migrated, test configs and a quiet logger.
func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	// Every sqlite in-memory connection is its own database, so the pool
	// must stay on a single connection or concurrent tests would see empty
	// schemas.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	cfg := config.Configs{
		Env: "test",
		ApiServer: config.ServerConfigs{
			DefaultLimit: 10,
			MaxLimit:     50,
		},
		Coin: config.CoinConfigs{
			TaskReward:    1,
			AllClearBonus: 3,
			QuizReward:    2,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}
