package repository

import (
	"context"

	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/pkg/xcontext"
)

type EarnedBadgeRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]entity.EarnedBadge, error)
	CreateList(ctx context.Context, badges []entity.EarnedBadge) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type earnedBadgeRepository struct{}

func NewEarnedBadgeRepository() *earnedBadgeRepository {
	return &earnedBadgeRepository{}
}

func (r *earnedBadgeRepository) GetByUserID(
	ctx context.Context, userID string,
) ([]entity.EarnedBadge, error) {
	var result []entity.EarnedBadge
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("earned_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *earnedBadgeRepository) CreateList(ctx context.Context, badges []entity.EarnedBadge) error {
	if len(badges) == 0 {
		return nil
	}

	return xcontext.DB(ctx).Create(badges).Error
}

// DeleteByUserID removes all awards of a user so a recompute can write the
// fresh set. Always called inside the same database transaction as the
// following CreateList.
func (r *earnedBadgeRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return xcontext.DB(ctx).
		Where("user_id=?", userID).
		Delete(&entity.EarnedBadge{}).Error
}
