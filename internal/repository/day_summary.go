package repository

import (
	"context"

	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/pkg/dateutil"
	"github.com/homequest/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type DaySummaryRepository interface {
	Get(ctx context.Context, userID string, date dateutil.Date) (*entity.DayTaskSummary, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.DayTaskSummary, error)
	Upsert(ctx context.Context, summary *entity.DayTaskSummary) error
}

type daySummaryRepository struct{}

func NewDaySummaryRepository() *daySummaryRepository {
	return &daySummaryRepository{}
}

func (r *daySummaryRepository) Get(
	ctx context.Context, userID string, date dateutil.Date,
) (*entity.DayTaskSummary, error) {
	var result entity.DayTaskSummary
	err := xcontext.DB(ctx).
		Where("user_id=? AND date=?", userID, date).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *daySummaryRepository) GetByUserID(
	ctx context.Context, userID string,
) ([]entity.DayTaskSummary, error) {
	var result []entity.DayTaskSummary
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("date ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *daySummaryRepository) Upsert(ctx context.Context, summary *entity.DayTaskSummary) error {
	return xcontext.DB(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total", "completed", "tasks", "updated_at",
		}),
	}).Create(summary).Error
}
