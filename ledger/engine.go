package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tradetide/tradetide/internal/id"
	"github.com/tradetide/tradetide/journal"
)

// Execution is the engine's receipt for one applied trade.
type Execution struct {
	ID           string
	Identity     string
	Symbol       string
	Side         Side
	Quantity     int64
	Price        int64
	Notional     int64
	Fee          int64
	RealizedGain int64 // zero for buys
	Win          bool
	Time         time.Time
}

type EngineParams struct {
	// FeeBps is the execution fee in basis points.
	//
	// Defaults to DefaultFeeBps.
	FeeBps int64

	// Journal receives every execution and a portfolio snapshot
	// after it. Defaults to journal.Discard.
	Journal journal.Journal

	// Log defaults to logrus.StandardLogger().
	Log *logrus.Logger
}

// Engine validates and applies trades against the account store and
// position ledger. A trade either passes every check and commits in
// full, or fails and leaves all state untouched. One mutex serializes
// mutations; reads through the Valuator stay lock-free against it.
type Engine struct {
	mu        sync.Mutex
	accounts  *AccountStore
	positions *PositionLedger
	journal   journal.Journal
	log       *logrus.Logger
	feeBps    int64
}

func NewEngine(accounts *AccountStore, positions *PositionLedger, p EngineParams) *Engine {
	if p.FeeBps <= 0 {
		p.FeeBps = DefaultFeeBps
	}
	if p.Journal == nil {
		p.Journal = journal.Discard{}
	}
	if p.Log == nil {
		p.Log = logrus.StandardLogger()
	}

	return &Engine{
		accounts:  accounts,
		positions: positions,
		journal:   p.Journal,
		log:       p.Log,
		feeBps:    p.FeeBps,
	}
}

// CreateAccount opens a fresh account for identity.
func (e *Engine) CreateAccount(identity string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.accounts.Create(identity); err != nil {
		return err
	}

	acct, _ := e.accounts.Get(identity)
	e.log.WithFields(logrus.Fields{
		"identity": identity,
		"balance":  acct.Balance,
	}).Info("account created")
	return nil
}

// ExecuteTrade applies a single buy or sell for identity. Every
// check runs before the first write; on any failure no account or
// position state changes and no counters move.
func (e *Engine) ExecuteTrade(ctx context.Context, identity string, t Trade) (Execution, error) {
	_ = ctx // reserved for future cancellation checks

	if err := t.Validate(); err != nil {
		return Execution{}, err
	}

	e.mu.Lock()

	acct, err := e.accounts.Get(identity)
	if err != nil || !acct.Active {
		e.mu.Unlock()
		return Execution{}, fmt.Errorf("execute trade for %q: %w", identity, ErrNoAccount)
	}

	notional := t.Notional()
	fee := FeeFor(notional, e.feeBps)

	exec := Execution{
		ID:       id.New(),
		Identity: identity,
		Symbol:   t.Symbol,
		Side:     t.Side,
		Quantity: t.Quantity,
		Price:    t.Price,
		Notional: notional,
		Fee:      fee,
		Time:     time.Now().UTC(),
	}

	switch t.Side {
	case Buy:
		totalCost := notional + fee
		if acct.Balance < totalCost {
			e.mu.Unlock()
			return Execution{}, fmt.Errorf("buy %d %s for %q costs %d: %w",
				t.Quantity, t.Symbol, identity, totalCost, ErrInsufficientFunds)
		}

		if err := e.accounts.AdjustBalance(identity, -totalCost); err != nil {
			e.mu.Unlock()
			return Execution{}, err
		}
		e.positions.ApplyBuy(identity, t.Symbol, t.Quantity, t.Price)
		if err := e.accounts.RecordOutcome(identity, fee, nil, false); err != nil {
			e.mu.Unlock()
			return Execution{}, err
		}

	case Sell:
		pos, ok := e.positions.Get(identity, t.Symbol)
		if !ok || pos.Quantity < t.Quantity {
			e.mu.Unlock()
			return Execution{}, fmt.Errorf("sell %d %s for %q: %w",
				t.Quantity, t.Symbol, identity, ErrInsufficientPosition)
		}

		gain := (t.Price-pos.AvgPrice)*t.Quantity - fee
		exec.RealizedGain = gain
		exec.Win = gain > 0

		if err := e.accounts.AdjustBalance(identity, notional-fee); err != nil {
			e.mu.Unlock()
			return Execution{}, err
		}
		if err := e.positions.ApplySell(identity, t.Symbol, t.Quantity); err != nil {
			e.mu.Unlock()
			return Execution{}, err
		}
		if err := e.accounts.RecordOutcome(identity, fee, &gain, exec.Win); err != nil {
			e.mu.Unlock()
			return Execution{}, err
		}
	}

	if err := e.journalLocked(exec); err != nil {
		e.mu.Unlock()
		return Execution{}, err
	}

	e.mu.Unlock()

	e.log.WithFields(logrus.Fields{
		"exec_id":       exec.ID,
		"identity":      identity,
		"symbol":        t.Symbol,
		"side":          t.Side,
		"quantity":      t.Quantity,
		"price":         t.Price,
		"fee":           fee,
		"realized_gain": exec.RealizedGain,
	}).Info("trade executed")

	return exec, nil
}

// journalLocked records the execution and a snapshot of the
// identity's post-trade state.
func (e *Engine) journalLocked(exec Execution) error {
	if err := e.journal.RecordExecution(journal.ExecutionRecord{
		ExecID:       exec.ID,
		Identity:     exec.Identity,
		Symbol:       exec.Symbol,
		Side:         string(exec.Side),
		Quantity:     exec.Quantity,
		Price:        exec.Price,
		Notional:     exec.Notional,
		Fee:          exec.Fee,
		RealizedGain: exec.RealizedGain,
		Win:          exec.Win,
		ExecutedAt:   exec.Time,
	}); err != nil {
		return err
	}

	acct, err := e.accounts.Get(exec.Identity)
	if err != nil {
		return err
	}

	totalValue := acct.Balance
	for _, pos := range e.positions.Open(exec.Identity) {
		totalValue += pos.Quantity * pos.AvgPrice
	}

	return e.journal.RecordSnapshot(journal.PortfolioSnapshot{
		Time:          exec.Time,
		Identity:      exec.Identity,
		Balance:       acct.Balance,
		TotalValue:    totalValue,
		RealizedGains: acct.RealizedGains,
		TotalFees:     acct.TotalFees,
		TradeCount:    acct.TradeCount,
		WinCount:      acct.WinCount,
	})
}
