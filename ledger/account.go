package ledger

import (
	"fmt"
	"sync"
)

// DefaultInitialBalance is the cash every new account starts with,
// in the smallest currency unit.
const DefaultInitialBalance int64 = 1_000_000

// Account is one identity's cash balance and cumulative trade
// counters. Balance never goes negative; any mutation that would
// take it below zero is rejected before state is written.
type Account struct {
	Identity      string
	Balance       int64
	Active        bool
	TotalFees     int64
	RealizedGains int64
	TradeCount    int64
	WinCount      int64
}

type AccountStoreParams struct {
	// InitialBalance funds every newly created account.
	//
	// Defaults to DefaultInitialBalance.
	InitialBalance int64
}

// AccountStore owns the identity-keyed account records. It is the
// only holder of the map; callers get copies.
type AccountStore struct {
	p   AccountStoreParams
	mtx sync.RWMutex
	// Keyed by identity
	accounts map[string]*Account
}

func NewAccountStore(p AccountStoreParams) *AccountStore {
	if p.InitialBalance <= 0 {
		p.InitialBalance = DefaultInitialBalance
	}

	return &AccountStore{
		p:        p,
		accounts: make(map[string]*Account),
	}
}

// Create inserts a fresh account for identity with the configured
// initial balance and all counters at zero.
func (s *AccountStore) Create(identity string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, exists := s.accounts[identity]; exists {
		return fmt.Errorf("create account %q: %w", identity, ErrAccountExists)
	}

	s.accounts[identity] = &Account{
		Identity: identity,
		Balance:  s.p.InitialBalance,
		Active:   true,
	}
	return nil
}

// Get returns a copy of the account record.
func (s *AccountStore) Get(identity string) (Account, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	acct, ok := s.accounts[identity]
	if !ok {
		return Account{}, fmt.Errorf("account %q: %w", identity, ErrAccountNotFound)
	}
	return *acct, nil
}

// AdjustBalance applies a signed delta to the account balance.
// The delta is applied in full or not at all.
func (s *AccountStore) AdjustBalance(identity string, delta int64) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	acct, ok := s.accounts[identity]
	if !ok {
		return fmt.Errorf("adjust balance %q: %w", identity, ErrAccountNotFound)
	}
	if acct.Balance+delta < 0 {
		return fmt.Errorf("adjust balance %q by %d: %w", identity, delta, ErrInsufficientFunds)
	}

	acct.Balance += delta
	return nil
}

// RecordOutcome folds one applied trade into the account counters.
// gain is nil for trades that realize nothing (buys); winCount moves
// only for a win with a positive gain.
func (s *AccountStore) RecordOutcome(identity string, fee int64, gain *int64, win bool) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	acct, ok := s.accounts[identity]
	if !ok {
		return fmt.Errorf("record outcome %q: %w", identity, ErrAccountNotFound)
	}

	acct.TradeCount++
	acct.TotalFees += fee
	if gain != nil {
		acct.RealizedGains += *gain
		if win && *gain > 0 {
			acct.WinCount++
		}
	}
	return nil
}
