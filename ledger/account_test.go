package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountStoreCreate(t *testing.T) {
	t.Parallel()

	s := NewAccountStore(AccountStoreParams{})

	assert.NoError(t, s.Create("alice"))

	acct, err := s.Get("alice")
	assert.NoError(t, err)
	assert.Equal(t, DefaultInitialBalance, acct.Balance)
	assert.True(t, acct.Active)
	assert.Zero(t, acct.TotalFees)
	assert.Zero(t, acct.RealizedGains)
	assert.Zero(t, acct.TradeCount)
	assert.Zero(t, acct.WinCount)
}

func TestAccountStoreCreateDuplicate(t *testing.T) {
	t.Parallel()

	s := NewAccountStore(AccountStoreParams{})

	assert.NoError(t, s.Create("alice"))
	assert.NoError(t, s.AdjustBalance("alice", -100))

	err := s.Create("alice")
	assert.ErrorIs(t, err, ErrAccountExists)

	// Original record unchanged by the failed create.
	acct, err := s.Get("alice")
	assert.NoError(t, err)
	assert.Equal(t, DefaultInitialBalance-100, acct.Balance)
}

func TestAccountStoreCustomInitialBalance(t *testing.T) {
	t.Parallel()

	s := NewAccountStore(AccountStoreParams{InitialBalance: 5_000_000})
	assert.NoError(t, s.Create("bob"))

	acct, err := s.Get("bob")
	assert.NoError(t, err)
	assert.Equal(t, int64(5_000_000), acct.Balance)
}

func TestAccountStoreGetUnknown(t *testing.T) {
	t.Parallel()

	s := NewAccountStore(AccountStoreParams{})
	_, err := s.Get("nobody")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountStoreAdjustBalance(t *testing.T) {
	t.Parallel()

	s := NewAccountStore(AccountStoreParams{})
	assert.NoError(t, s.Create("alice"))

	assert.NoError(t, s.AdjustBalance("alice", -400_000))
	assert.NoError(t, s.AdjustBalance("alice", 150))

	acct, _ := s.Get("alice")
	assert.Equal(t, int64(600_150), acct.Balance)
}

func TestAccountStoreAdjustBalanceInsufficient(t *testing.T) {
	t.Parallel()

	s := NewAccountStore(AccountStoreParams{})
	assert.NoError(t, s.Create("alice"))

	err := s.AdjustBalance("alice", -(DefaultInitialBalance + 1))
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// Failed adjustment leaves the balance untouched.
	acct, _ := s.Get("alice")
	assert.Equal(t, DefaultInitialBalance, acct.Balance)

	// Draining to exactly zero is allowed.
	assert.NoError(t, s.AdjustBalance("alice", -DefaultInitialBalance))
	acct, _ = s.Get("alice")
	assert.Zero(t, acct.Balance)
}

func TestAccountStoreRecordOutcome(t *testing.T) {
	t.Parallel()

	s := NewAccountStore(AccountStoreParams{})
	assert.NoError(t, s.Create("alice"))

	// A buy: fee only, nothing realized.
	assert.NoError(t, s.RecordOutcome("alice", 150, nil, false))

	acct, _ := s.Get("alice")
	assert.Equal(t, int64(1), acct.TradeCount)
	assert.Equal(t, int64(150), acct.TotalFees)
	assert.Zero(t, acct.RealizedGains)
	assert.Zero(t, acct.WinCount)

	// A winning sell.
	gain := int64(4920)
	assert.NoError(t, s.RecordOutcome("alice", 80, &gain, true))

	acct, _ = s.Get("alice")
	assert.Equal(t, int64(2), acct.TradeCount)
	assert.Equal(t, int64(230), acct.TotalFees)
	assert.Equal(t, int64(4920), acct.RealizedGains)
	assert.Equal(t, int64(1), acct.WinCount)

	// A losing sell never counts as a win, even when flagged.
	loss := int64(-5070)
	assert.NoError(t, s.RecordOutcome("alice", 70, &loss, true))

	acct, _ = s.Get("alice")
	assert.Equal(t, int64(3), acct.TradeCount)
	assert.Equal(t, int64(-150), acct.RealizedGains)
	assert.Equal(t, int64(1), acct.WinCount)
}

func TestAccountStoreRecordOutcomeUnknown(t *testing.T) {
	t.Parallel()

	s := NewAccountStore(AccountStoreParams{})
	assert.ErrorIs(t, s.RecordOutcome("nobody", 1, nil, false), ErrAccountNotFound)
	assert.ErrorIs(t, s.AdjustBalance("nobody", 1), ErrAccountNotFound)
}
