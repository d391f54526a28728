package repository

import (
	"context"
	"errors"

	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/pkg/xcontext"
	"github.com/pkg/math"
	"gorm.io/gorm"
)

type CoinRepository interface {
	GetBalance(ctx context.Context, userID string) (int64, error)
	CreateTransaction(ctx context.Context, tx *entity.CoinTransaction) error
	AddBalance(ctx context.Context, userID string, amount int64) (int64, error)
	DeductBalanceIfEnough(ctx context.Context, userID string, cost int64) (bool, error)
	GetTransactions(ctx context.Context, userID string, limit int) ([]entity.CoinTransaction, error)
}

type coinRepository struct{}

func NewCoinRepository() *coinRepository {
	return &coinRepository{}
}

func (r *coinRepository) GetBalance(ctx context.Context, userID string) (int64, error) {
	var balance entity.CoinBalance
	err := xcontext.DB(ctx).Where("user_id=?", userID).Take(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		return 0, err
	}

	return balance.Balance, nil
}

func (r *coinRepository) CreateTransaction(ctx context.Context, tx *entity.CoinTransaction) error {
	return xcontext.DB(ctx).Create(tx).Error
}

// AddBalance applies a signed delta to the cached balance, creating the row
// on first use, and returns the new balance. Callers serialize per user, so
// the update-then-create sequence cannot race with itself.
func (r *coinRepository) AddBalance(ctx context.Context, userID string, amount int64) (int64, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.CoinBalance{}).
		Where("user_id=?", userID).
		Update("balance", gorm.Expr("balance+?", amount))

	if tx.Error != nil {
		return 0, tx.Error
	}

	if tx.RowsAffected == 0 {
		balance := &entity.CoinBalance{UserID: userID, Balance: amount}
		if err := xcontext.DB(ctx).Create(balance).Error; err != nil {
			return 0, err
		}

		return balance.Balance, nil
	}

	return r.GetBalance(ctx, userID)
}

// DeductBalanceIfEnough is the atomic check-and-decrement. The balance test
// and the subtraction run as one UPDATE, so two overdrawing spends can never
// both pass: the second sees the already-decremented balance.
func (r *coinRepository) DeductBalanceIfEnough(
	ctx context.Context, userID string, cost int64,
) (bool, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.CoinBalance{}).
		Where("user_id=? AND balance>=?", userID, cost).
		Update("balance", gorm.Expr("balance-?", cost))

	if tx.Error != nil {
		return false, tx.Error
	}

	if tx.RowsAffected > 1 {
		return false, errors.New("the number of affected rows is invalid")
	}

	return tx.RowsAffected == 1, nil
}

func (r *coinRepository) GetTransactions(
	ctx context.Context, userID string, limit int,
) ([]entity.CoinTransaction, error) {
	maxLimit := xcontext.Configs(ctx).ApiServer.MaxLimit
	if maxLimit > 0 {
		limit = math.MinInt(limit, maxLimit)
	}

	var result []entity.CoinTransaction
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
