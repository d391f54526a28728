package model

import (
	"time"

	"github.com/homequest/backend/internal/domain/badge"
	"github.com/homequest/backend/internal/entity"
)

func ConvertEarnedBadge(b entity.EarnedBadge, def badge.Definition) EarnedBadge {
	result := EarnedBadge{
		BadgeID:    b.BadgeID,
		UserID:     b.UserID,
		EarnedAt:   b.EarnedAt.Format(time.RFC3339),
		EarnedDate: b.EarnedDate.String(),
	}

	// The definition may be nil when a badge was removed from the catalog
	// after being earned; the award itself is still shown.
	if def != nil {
		result.Grade = string(def.Grade())
		result.Category = string(def.Category())
	}

	return result
}

func ConvertCoinTransaction(tx entity.CoinTransaction) CoinTransaction {
	return CoinTransaction{
		ID:        tx.ID,
		UserID:    tx.UserID,
		Amount:    tx.Amount,
		Type:      string(tx.Type),
		Reason:    tx.Reason,
		RefID:     tx.RefID,
		CreatedAt: tx.CreatedAt.Format(time.RFC3339),
	}
}
