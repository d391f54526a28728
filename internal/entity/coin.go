package entity

import (
	"time"

	"github.com/homequest/backend/pkg/enum"
)

type CoinTransactionType string

var (
	CoinTaskComplete   = enum.New(CoinTransactionType("task_complete"))
	CoinTaskUncomplete = enum.New(CoinTransactionType("task_uncomplete"))
	CoinAllClearBonus  = enum.New(CoinTransactionType("allclear_bonus"))
	CoinExchange       = enum.New(CoinTransactionType("exchange"))
	CoinAdminAdjust    = enum.New(CoinTransactionType("admin_adjust"))
	CoinVocabQuiz      = enum.New(CoinTransactionType("vocab_quiz"))
	CoinGame           = enum.New(CoinTransactionType("game"))
)

// CoinBalance caches the running sum of a user's transactions. It is only
// written together with a transaction insert, inside the same database
// transaction, and never drops below zero through the Spend path.
type CoinBalance struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	Balance   int64
	UpdatedAt time.Time
}

// CoinTransaction is one append-only ledger row. The snowflake id is
// time-ordered, so sorting by id descending yields newest-first history.
type CoinTransaction struct {
	ID int64 `gorm:"primaryKey"`

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Amount int64
	Type   CoinTransactionType
	Reason string
	RefID  string

	CreatedAt time.Time
}
