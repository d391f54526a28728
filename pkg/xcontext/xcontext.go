package xcontext

import (
	"context"

	"github.com/homequest/backend/config"
	"github.com/homequest/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	dbKey          struct{}
	txKey          struct{}
	loggerKey      struct{}
	configsKey     struct{}
	requestUserKey struct{}
)

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the current database handle. If a transaction was begun with
// WithDBTransaction, the transaction handle is returned instead, so all
// repository calls inside the transaction share it transparently.
func DB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}

	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		panic("no database in context")
	}

	return db
}

// WithDBTransaction begins a transaction on the context database. The caller
// must finish it with WithCommitDBTransaction or WithRollbackDBTransaction.
func WithDBTransaction(ctx context.Context) context.Context {
	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		panic("no database in context")
	}

	return context.WithValue(ctx, txKey{}, db.Begin())
}

// WithRollbackDBTransaction rollbacks the current transaction. Calling it
// after a commit is a no-op, so it is safe to defer.
func WithRollbackDBTransaction(ctx context.Context) {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		tx.Rollback()
	}
}

func WithCommitDBTransaction(ctx context.Context) {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		tx.Commit()
	}
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey{}).(logger.Logger); ok {
		return l
	}

	return logger.NewLogger(logger.INFO)
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg, _ := ctx.Value(configsKey{}).(config.Configs)
	return cfg
}

func WithRequestUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, requestUserKey{}, userID)
}

func RequestUserID(ctx context.Context) string {
	id, _ := ctx.Value(requestUserKey{}).(string)
	return id
}
