package coin

import (
	"context"
	"sync"

	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/internal/repository"
	"github.com/homequest/backend/pkg/errorx"
	"github.com/homequest/backend/pkg/idutil"
	"github.com/homequest/backend/pkg/xcontext"
	"github.com/puzpuzpuz/xsync"
)

// Ledger owns all balance-affecting operations. Every mutation appends one
// transaction row and updates the cached balance inside one database
// transaction, serialized per user, so the cached balance always equals the
// running sum of the rows and concurrent spends cannot overdraw.
type Ledger struct {
	coinRepo    repository.CoinRepository
	idGenerator *idutil.Generator

	// One mutex per user. Cross-user operations run fully in parallel. The
	// database-level conditional decrement already prevents overdraw on
	// backends with row locking; the mutex extends the guarantee to
	// backends without it and keeps insert+update ordering stable.
	userLocks *xsync.MapOf[string, *sync.Mutex]
}

func NewLedger(coinRepo repository.CoinRepository, idGenerator *idutil.Generator) *Ledger {
	return &Ledger{
		coinRepo:    coinRepo,
		idGenerator: idGenerator,
		userLocks:   xsync.NewMapOf[*sync.Mutex](),
	}
}

func (l *Ledger) lockUser(userID string) *sync.Mutex {
	mutex, _ := l.userLocks.LoadOrCompute(userID, func() *sync.Mutex {
		return &sync.Mutex{}
	})

	mutex.Lock()
	return mutex
}

func (l *Ledger) Balance(ctx context.Context, userID string) (int64, error) {
	return l.coinRepo.GetBalance(ctx, userID)
}

// AddTransaction appends a signed transaction unconditionally and returns
// the new balance. It never refuses; deduction flows that must refuse on
// insufficiency go through Spend instead.
func (l *Ledger) AddTransaction(
	ctx context.Context,
	userID string,
	amount int64,
	txType entity.CoinTransactionType,
	reason, refID string,
) (int64, error) {
	mutex := l.lockUser(userID)
	defer mutex.Unlock()

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	err := l.coinRepo.CreateTransaction(ctx, &entity.CoinTransaction{
		ID:     l.idGenerator.Generate(),
		UserID: userID,
		Amount: amount,
		Type:   txType,
		Reason: reason,
		RefID:  refID,
	})
	if err != nil {
		return 0, err
	}

	newBalance, err := l.coinRepo.AddBalance(ctx, userID, amount)
	if err != nil {
		return 0, err
	}

	xcontext.WithCommitDBTransaction(ctx)
	return newBalance, nil
}

// Spend atomically checks balance >= cost and deducts. It returns ok=false
// and leaves the ledger untouched when the balance is insufficient; that is
// an expected outcome, not an error.
func (l *Ledger) Spend(
	ctx context.Context,
	userID string,
	cost int64,
	txType entity.CoinTransactionType,
	reason, refID string,
) (bool, int64, error) {
	if cost <= 0 {
		return false, 0, errorx.New(errorx.BadRequest, "Spend cost must be positive, got %d", cost)
	}

	mutex := l.lockUser(userID)
	defer mutex.Unlock()

	txCtx := xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(txCtx)

	deducted, err := l.coinRepo.DeductBalanceIfEnough(txCtx, userID, cost)
	if err != nil {
		return false, 0, err
	}

	if !deducted {
		balance, err := l.coinRepo.GetBalance(txCtx, userID)
		if err != nil {
			return false, 0, err
		}

		return false, balance, nil
	}

	err = l.coinRepo.CreateTransaction(txCtx, &entity.CoinTransaction{
		ID:     l.idGenerator.Generate(),
		UserID: userID,
		Amount: -cost,
		Type:   txType,
		Reason: reason,
		RefID:  refID,
	})
	if err != nil {
		return false, 0, err
	}

	newBalance, err := l.coinRepo.GetBalance(txCtx, userID)
	if err != nil {
		return false, 0, err
	}

	xcontext.WithCommitDBTransaction(txCtx)
	return true, newBalance, nil
}

func (l *Ledger) Transactions(
	ctx context.Context, userID string, limit int,
) ([]entity.CoinTransaction, error) {
	if limit <= 0 {
		limit = xcontext.Configs(ctx).ApiServer.DefaultLimit
	}

	return l.coinRepo.GetTransactions(ctx, userID, limit)
}
