package domain

import (
	"context"

	"github.com/homequest/backend/internal/domain/coin"
	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/internal/model"
	"github.com/homequest/backend/pkg/errorx"
	"github.com/homequest/backend/pkg/xcontext"
)

type CoinDomain interface {
	GetBalance(ctx context.Context, req *model.GetBalanceRequest) (*model.GetBalanceResponse, error)
	AdjustCoins(ctx context.Context, req *model.AdjustCoinsRequest) (*model.AdjustCoinsResponse, error)
	ExchangeReward(ctx context.Context, req *model.ExchangeRewardRequest) (*model.ExchangeRewardResponse, error)
	GetTransactions(ctx context.Context, req *model.GetTransactionsRequest) (*model.GetTransactionsResponse, error)
}

type coinDomain struct {
	ledger *coin.Ledger
}

func NewCoinDomain(ledger *coin.Ledger) *coinDomain {
	return &coinDomain{ledger: ledger}
}

func (d *coinDomain) GetBalance(
	ctx context.Context, req *model.GetBalanceRequest,
) (*model.GetBalanceResponse, error) {
	balance, err := d.ledger.Balance(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get balance: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetBalanceResponse{Balance: balance}, nil
}

// AdjustCoins is the parent/admin correction entry. The amount is signed and
// applied unconditionally; an overdraft here is the admin's deliberate call.
func (d *coinDomain) AdjustCoins(
	ctx context.Context, req *model.AdjustCoinsRequest,
) (*model.AdjustCoinsResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty user id")
	}

	if req.Amount == 0 {
		return nil, errorx.New(errorx.BadRequest, "Not allow a zero adjustment")
	}

	balance, err := d.ledger.AddTransaction(
		ctx, req.UserID, req.Amount, entity.CoinAdminAdjust, req.Reason, "")
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot adjust coins: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AdjustCoinsResponse{Balance: balance}, nil
}

// ExchangeReward deducts the reward cost through the spend path. The caller
// must only mark the reward granted when OK is true.
func (d *coinDomain) ExchangeReward(
	ctx context.Context, req *model.ExchangeRewardRequest,
) (*model.ExchangeRewardResponse, error) {
	ok, balance, err := d.ledger.Spend(
		ctx, xcontext.RequestUserID(ctx), req.Cost, entity.CoinExchange, req.Reason, req.RewardID)
	if err != nil {
		if _, isErrx := err.(errorx.Error); isErrx {
			return nil, err
		}

		xcontext.Logger(ctx).Errorf("Cannot exchange reward: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ExchangeRewardResponse{OK: ok, Balance: balance}, nil
}

func (d *coinDomain) GetTransactions(
	ctx context.Context, req *model.GetTransactionsRequest,
) (*model.GetTransactionsResponse, error) {
	transactions, err := d.ledger.Transactions(ctx, xcontext.RequestUserID(ctx), req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get transactions: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetTransactionsResponse{}
	for _, tx := range transactions {
		resp.Transactions = append(resp.Transactions, model.ConvertCoinTransaction(tx))
	}

	return resp, nil
}
