package repository

import (
	"context"

	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/pkg/xcontext"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	UpdateSibling(ctx context.Context, userID, siblingID string) error
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return xcontext.DB(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) UpdateSibling(ctx context.Context, userID, siblingID string) error {
	return xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("id=?", userID).
		Update("sibling_id", siblingID).Error
}
