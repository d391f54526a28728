package domain

import (
	"context"
	"errors"
	"time"

	"github.com/homequest/backend/internal/domain/badge"
	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/internal/model"
	"github.com/homequest/backend/internal/repository"
	"github.com/homequest/backend/pkg/dateutil"
	"github.com/homequest/backend/pkg/errorx"
	"github.com/homequest/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type BadgeDomain interface {
	RefreshBadges(ctx context.Context, req *model.RefreshBadgesRequest) (*model.RefreshBadgesResponse, error)
	GetMyBadges(ctx context.Context, req *model.GetMyBadgesRequest) (*model.GetMyBadgesResponse, error)
	GetBadgeCatalog(ctx context.Context, req *model.GetBadgeCatalogRequest) (*model.GetBadgeCatalogResponse, error)
}

type badgeDomain struct {
	userRepo        repository.UserRepository
	daySummaryRepo  repository.DaySummaryRepository
	earnedBadgeRepo repository.EarnedBadgeRepository
	engine          *badge.Engine

	// definitions indexes the engine catalog by id for model conversion.
	definitions map[string]badge.Definition
}

func NewBadgeDomain(
	userRepo repository.UserRepository,
	daySummaryRepo repository.DaySummaryRepository,
	earnedBadgeRepo repository.EarnedBadgeRepository,
	engine *badge.Engine,
) *badgeDomain {
	definitions := make(map[string]badge.Definition)
	for _, def := range engine.Catalog() {
		definitions[def.ID()] = def
	}

	return &badgeDomain{
		userRepo:        userRepo,
		daySummaryRepo:  daySummaryRepo,
		earnedBadgeRepo: earnedBadgeRepo,
		engine:          engine,
		definitions:     definitions,
	}
}

// RefreshBadges replays the requesting user's whole history and replaces the
// stored earned set with the recomputed one. The response also carries the
// diff against the previous set so clients can announce new awards.
func (d *badgeDomain) RefreshBadges(
	ctx context.Context, req *model.RefreshBadgesRequest,
) (*model.RefreshBadgesResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	history, err := d.loadHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	var siblingHistory badge.History
	if user.SiblingID.Valid {
		siblingHistory, err = d.loadHistory(ctx, user.SiblingID.String)
		if err != nil {
			return nil, err
		}
	}

	earned := d.engine.Evaluate(userID, history, siblingHistory, dateutil.Today(), time.Now())

	previous, err := d.earnedBadgeRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get previous earned badges: %v", err)
		return nil, errorx.Unknown
	}

	previousKeys := make(map[awardKey]struct{}, len(previous))
	for _, b := range previous {
		previousKeys[awardKey{b.BadgeID, b.EarnedDate.String()}] = struct{}{}
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.earnedBadgeRepo.DeleteByUserID(ctx, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete earned badges: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.earnedBadgeRepo.CreateList(ctx, earned); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store earned badges: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	resp := &model.RefreshBadgesResponse{}
	for _, b := range earned {
		converted := model.ConvertEarnedBadge(b, d.definitions[b.BadgeID])
		resp.EarnedBadges = append(resp.EarnedBadges, converted)

		if _, ok := previousKeys[awardKey{b.BadgeID, b.EarnedDate.String()}]; !ok {
			resp.NewBadges = append(resp.NewBadges, converted)
		}
	}

	return resp, nil
}

type awardKey struct {
	badgeID string
	date    string
}

func (d *badgeDomain) loadHistory(ctx context.Context, userID string) (badge.History, error) {
	summaries, err := d.daySummaryRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get day summaries of %s: %v", userID, err)
		return nil, errorx.Unknown
	}

	history, err := badge.NewHistory(summaries)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Invalid history of %s: %v", userID, err)
		return nil, err
	}

	return history, nil
}

func (d *badgeDomain) GetMyBadges(
	ctx context.Context, req *model.GetMyBadgesRequest,
) (*model.GetMyBadgesResponse, error) {
	earned, err := d.earnedBadgeRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get earned badges: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetMyBadgesResponse{}
	for _, b := range earned {
		resp.EarnedBadges = append(resp.EarnedBadges, model.ConvertEarnedBadge(b, d.definitions[b.BadgeID]))
	}

	return resp, nil
}

// GetBadgeCatalog lists the discoverable catalog for display, ordered by
// grade then id. Hidden badges only appear once the requesting user has
// earned them.
func (d *badgeDomain) GetBadgeCatalog(
	ctx context.Context, req *model.GetBadgeCatalogRequest,
) (*model.GetBadgeCatalogResponse, error) {
	earned, err := d.earnedBadgeRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get earned badges: %v", err)
		return nil, errorx.Unknown
	}

	earnedIDs := make(map[string]struct{}, len(earned))
	for _, b := range earned {
		earnedIDs[b.BadgeID] = struct{}{}
	}

	visible := make([]badge.Definition, 0, len(d.engine.Catalog()))
	for _, def := range d.engine.Catalog() {
		if def.Hidden() {
			if _, ok := earnedIDs[def.ID()]; !ok {
				continue
			}
		}

		visible = append(visible, def)
	}

	slices.SortStableFunc(visible, func(a, b badge.Definition) bool {
		if entity.GradeRank(a.Grade()) != entity.GradeRank(b.Grade()) {
			return entity.GradeRank(a.Grade()) < entity.GradeRank(b.Grade())
		}

		return a.ID() < b.ID()
	})

	resp := &model.GetBadgeCatalogResponse{}
	for _, def := range visible {
		resp.Badges = append(resp.Badges, badge.Describe(def))
	}

	return resp, nil
}
