package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/internal/model"
	"github.com/homequest/backend/internal/repository"
	"github.com/homequest/backend/pkg/errorx"
	"github.com/homequest/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.CreateUserResponse, error)
	LinkSibling(ctx context.Context, req *model.LinkSiblingRequest) (*model.LinkSiblingResponse, error)
}

type userDomain struct {
	userRepo repository.UserRepository
}

func NewUserDomain(userRepo repository.UserRepository) *userDomain {
	return &userDomain{userRepo: userRepo}
}

func (d *userDomain) CreateUser(
	ctx context.Context, req *model.CreateUserRequest,
) (*model.CreateUserResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
	}

	user := &entity.User{
		Base: entity.Base{ID: uuid.NewString()},
		Name: req.Name,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateUserResponse{ID: user.ID}, nil
}

// LinkSibling pairs the requesting user with another household member. The
// pairing is symmetric: both sides see each other as sibling afterwards.
func (d *userDomain) LinkSibling(
	ctx context.Context, req *model.LinkSiblingRequest,
) (*model.LinkSiblingResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if req.SiblingID == userID {
		return nil, errorx.New(errorx.BadRequest, "Cannot link a user to itself")
	}

	if _, err := d.userRepo.GetByID(ctx, req.SiblingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found sibling user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get sibling user: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.userRepo.UpdateSibling(ctx, userID, req.SiblingID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot link sibling: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.UpdateSibling(ctx, req.SiblingID, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot link sibling back: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.LinkSiblingResponse{}, nil
}
