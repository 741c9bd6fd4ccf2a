package ledger

import "fmt"

// Portfolio is the aggregate view of one identity's account.
// TotalValue prices open holdings at cost basis; without a market
// feed there is no other price to mark against, which also pins
// UnrealizedGains at zero.
type Portfolio struct {
	TotalValue      int64
	RealizedGains   int64
	UnrealizedGains int64
	WinRate         int64 // percent, floored
	TradeCount      int64
	TotalFees       int64
}

type AccountInfo struct {
	Balance int64
	Active  bool
}

// Valuator derives read-only aggregates from the account store and
// position ledger. It never writes, so it is safe to call while the
// engine is applying trades.
type Valuator struct {
	accounts  *AccountStore
	positions *PositionLedger
}

func NewValuator(accounts *AccountStore, positions *PositionLedger) *Valuator {
	return &Valuator{accounts: accounts, positions: positions}
}

func (v *Valuator) GetPortfolio(identity string) (Portfolio, error) {
	acct, err := v.accounts.Get(identity)
	if err != nil {
		return Portfolio{}, fmt.Errorf("portfolio for %q: %w", identity, ErrNoAccount)
	}

	totalValue := acct.Balance
	for _, pos := range v.positions.Open(identity) {
		totalValue += pos.Quantity * pos.AvgPrice
	}

	var winRate int64
	if acct.TradeCount > 0 {
		winRate = acct.WinCount * 100 / acct.TradeCount
	}

	return Portfolio{
		TotalValue:      totalValue,
		RealizedGains:   acct.RealizedGains,
		UnrealizedGains: 0, // cost-basis valuation
		WinRate:         winRate,
		TradeCount:      acct.TradeCount,
		TotalFees:       acct.TotalFees,
	}, nil
}

func (v *Valuator) GetAccountInfo(identity string) (AccountInfo, error) {
	acct, err := v.accounts.Get(identity)
	if err != nil {
		return AccountInfo{}, err
	}
	return AccountInfo{Balance: acct.Balance, Active: acct.Active}, nil
}

// GetPosition reports the identity's holding in symbol, if any.
func (v *Valuator) GetPosition(identity, symbol string) (Position, bool) {
	return v.positions.Get(identity, symbol)
}
