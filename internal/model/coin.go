package model

type CoinTransaction struct {
	ID        int64  `json:"id"`
	UserID    string `json:"user_id"`
	Amount    int64  `json:"amount"`
	Type      string `json:"type"`
	Reason    string `json:"reason,omitempty"`
	RefID     string `json:"ref_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

type GetBalanceRequest struct{}

type GetBalanceResponse struct {
	Balance int64 `json:"balance"`
}

type AdjustCoinsRequest struct {
	UserID string `json:"user_id"`
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

type AdjustCoinsResponse struct {
	Balance int64 `json:"balance"`
}

type ExchangeRewardRequest struct {
	RewardID string `json:"reward_id"`
	Cost     int64  `json:"cost"`
	Reason   string `json:"reason"`
}

type ExchangeRewardResponse struct {
	// OK is false when the balance does not cover the cost. That outcome is
	// an ordinary response, not an error.
	OK      bool  `json:"ok"`
	Balance int64 `json:"balance"`
}

type GetTransactionsRequest struct {
	Limit int `json:"limit"`
}

type GetTransactionsResponse struct {
	Transactions []CoinTransaction `json:"transactions"`
}
