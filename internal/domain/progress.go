package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/homequest/backend/internal/domain/coin"
	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/internal/model"
	"github.com/homequest/backend/internal/repository"
	"github.com/homequest/backend/pkg/dateutil"
	"github.com/homequest/backend/pkg/errorx"
	"github.com/homequest/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ProgressDomain interface {
	SetTaskCompletion(ctx context.Context, req *model.SetTaskCompletionRequest) (*model.SetTaskCompletionResponse, error)
	CompleteQuiz(ctx context.Context, req *model.CompleteQuizRequest) (*model.CompleteQuizResponse, error)
	RecordGame(ctx context.Context, req *model.RecordGameRequest) (*model.RecordGameResponse, error)
}

// badgeRefresher is the slice of BadgeDomain the progress domain needs. The
// refresh is advisory: its failure never fails the task toggle.
type badgeRefresher interface {
	RefreshBadges(ctx context.Context, req *model.RefreshBadgesRequest) (*model.RefreshBadgesResponse, error)
}

type progressDomain struct {
	daySummaryRepo repository.DaySummaryRepository
	ledger         *coin.Ledger
	badgeDomain    badgeRefresher
}

func NewProgressDomain(
	daySummaryRepo repository.DaySummaryRepository,
	ledger *coin.Ledger,
	badgeDomain badgeRefresher,
) *progressDomain {
	return &progressDomain{
		daySummaryRepo: daySummaryRepo,
		ledger:         ledger,
		badgeDomain:    badgeDomain,
	}
}

// SetTaskCompletion toggles one task of today's list, rewrites the day
// summary, moves coins accordingly, and kicks a best-effort badge refresh.
func (d *progressDomain) SetTaskCompletion(
	ctx context.Context, req *model.SetTaskCompletionRequest,
) (*model.SetTaskCompletionResponse, error) {
	if req.TotalTasks <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Total tasks must be positive")
	}

	if req.TaskIndex < 0 || req.TaskIndex >= req.TotalTasks {
		return nil, errorx.New(errorx.BadRequest,
			"Task index %d out of range [0, %d)", req.TaskIndex, req.TotalTasks)
	}

	userID := xcontext.RequestUserID(ctx)
	today := dateutil.Today()

	summary, err := d.daySummaryRepo.Get(ctx, userID, today)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get day summary: %v", err)
			return nil, errorx.Unknown
		}

		summary = &entity.DayTaskSummary{UserID: userID, Date: today}
	}

	summary.Total = req.TotalTasks
	if len(summary.Tasks) != req.TotalTasks {
		tasks := make(entity.Array[entity.TaskCompletion], req.TotalTasks)
		copy(tasks, summary.Tasks)
		summary.Tasks = tasks
	}

	if summary.Tasks[req.TaskIndex].Completed == req.Completed {
		// Nothing changes; answer the current state without double-paying.
		return d.completionResponse(ctx, userID, summary)
	}

	wasAllClear := summary.IsPerfect()

	if req.Completed {
		now := time.Now()
		summary.Tasks[req.TaskIndex] = entity.TaskCompletion{Completed: true, CompletedAt: &now}
	} else {
		summary.Tasks[req.TaskIndex] = entity.TaskCompletion{}
	}

	completed := 0
	for _, task := range summary.Tasks {
		if task.Completed {
			completed++
		}
	}
	summary.Completed = completed

	if err := d.daySummaryRepo.Upsert(ctx, summary); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert day summary: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.applyCoinRewards(ctx, userID, req, summary, wasAllClear); err != nil {
		return nil, err
	}

	// Badge recompute is advisory relative to task state; a failure here
	// must not undo or fail the toggle.
	if _, err := d.badgeDomain.RefreshBadges(ctx, &model.RefreshBadgesRequest{}); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot refresh badges after toggle: %v", err)
	}

	return d.completionResponse(ctx, userID, summary)
}

func (d *progressDomain) applyCoinRewards(
	ctx context.Context,
	userID string,
	req *model.SetTaskCompletionRequest,
	summary *entity.DayTaskSummary,
	wasAllClear bool,
) error {
	cfg := xcontext.Configs(ctx).Coin
	refID := fmt.Sprintf("%s/%d", summary.Date, req.TaskIndex)

	if req.Completed {
		_, err := d.ledger.AddTransaction(
			ctx, userID, cfg.TaskReward, entity.CoinTaskComplete, "", refID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot reward task completion: %v", err)
			return errorx.Unknown
		}

		if !wasAllClear && summary.IsPerfect() {
			_, err := d.ledger.AddTransaction(
				ctx, userID, cfg.AllClearBonus, entity.CoinAllClearBonus, "", summary.Date.String())
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot grant all-clear bonus: %v", err)
				return errorx.Unknown
			}
		}

		return nil
	}

	_, err := d.ledger.AddTransaction(
		ctx, userID, -cfg.TaskReward, entity.CoinTaskUncomplete, "", refID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot revert task reward: %v", err)
		return errorx.Unknown
	}

	if wasAllClear {
		_, err := d.ledger.AddTransaction(
			ctx, userID, -cfg.AllClearBonus, entity.CoinAllClearBonus, "revoked", summary.Date.String())
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot revoke all-clear bonus: %v", err)
			return errorx.Unknown
		}
	}

	return nil
}

func (d *progressDomain) completionResponse(
	ctx context.Context, userID string, summary *entity.DayTaskSummary,
) (*model.SetTaskCompletionResponse, error) {
	balance, err := d.ledger.Balance(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get balance: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SetTaskCompletionResponse{
		Date:           summary.Date.String(),
		CompletedTasks: summary.Completed,
		TotalTasks:     summary.Total,
		AllClear:       summary.IsPerfect(),
		Balance:        balance,
	}, nil
}

func (d *progressDomain) CompleteQuiz(
	ctx context.Context, req *model.CompleteQuizRequest,
) (*model.CompleteQuizResponse, error) {
	if req.QuizID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty quiz id")
	}

	balance, err := d.ledger.AddTransaction(
		ctx, xcontext.RequestUserID(ctx),
		xcontext.Configs(ctx).Coin.QuizReward,
		entity.CoinVocabQuiz, "", req.QuizID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reward quiz: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CompleteQuizResponse{Balance: balance}, nil
}

func (d *progressDomain) RecordGame(
	ctx context.Context, req *model.RecordGameRequest,
) (*model.RecordGameResponse, error) {
	if req.Reward <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Game reward must be positive")
	}

	balance, err := d.ledger.AddTransaction(
		ctx, xcontext.RequestUserID(ctx), req.Reward, entity.CoinGame, "", req.GameID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reward game: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RecordGameResponse{Balance: balance}, nil
}
