package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	assert.NoError(t, err)

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('executions','snapshots')`)
	assert.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["executions"])
	assert.True(t, found["snapshots"])
}

func TestSQLiteRecordExecution(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)

	executed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	rec := ExecutionRecord{
		ExecID:       "E1",
		Identity:     "PAPER-001",
		Symbol:       "AAPL",
		Side:         "SELL",
		Quantity:     5,
		Price:        16000,
		Notional:     80000,
		Fee:          80,
		RealizedGain: 4920,
		Win:          true,
		ExecutedAt:   executed,
	}

	assert.NoError(t, j.RecordExecution(rec))
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var (
		execID     string
		identity   string
		symbol     string
		side       string
		quantity   int64
		price      int64
		notional   int64
		fee        int64
		gain       int64
		win        bool
		executedAt time.Time
	)

	err = db.QueryRow(`
        SELECT exec_id, identity, symbol, side, quantity, price, notional, fee, realized_gain, win, executed_at
        FROM executions LIMIT 1`).Scan(
		&execID, &identity, &symbol, &side, &quantity, &price, &notional, &fee, &gain, &win, &executedAt,
	)
	assert.NoError(t, err)

	assert.Equal(t, rec.ExecID, execID)
	assert.Equal(t, rec.Identity, identity)
	assert.Equal(t, rec.Symbol, symbol)
	assert.Equal(t, rec.Side, side)
	assert.Equal(t, rec.Quantity, quantity)
	assert.Equal(t, rec.Price, price)
	assert.Equal(t, rec.Notional, notional)
	assert.Equal(t, rec.Fee, fee)
	assert.Equal(t, rec.RealizedGain, gain)
	assert.True(t, win)
	assert.True(t, executedAt.Equal(rec.ExecutedAt))
}

func TestSQLiteRecordSnapshot(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)

	ts := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	rec := PortfolioSnapshot{
		Time:          ts,
		Identity:      "PAPER-001",
		Balance:       849850,
		TotalValue:    999850,
		RealizedGains: 0,
		TotalFees:     150,
		TradeCount:    1,
		WinCount:      0,
	}

	assert.NoError(t, j.RecordSnapshot(rec))
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var (
		gotTime    time.Time
		identity   string
		balance    int64
		totalValue int64
		realized   int64
		totalFees  int64
		tradeCount int64
		winCount   int64
	)

	err = db.QueryRow(`
        SELECT time, identity, balance, total_value, realized_gains, total_fees, trade_count, win_count
        FROM snapshots LIMIT 1`).Scan(
		&gotTime, &identity, &balance, &totalValue, &realized, &totalFees, &tradeCount, &winCount,
	)
	assert.NoError(t, err)

	assert.True(t, gotTime.Equal(rec.Time))
	assert.Equal(t, rec.Identity, identity)
	assert.Equal(t, rec.Balance, balance)
	assert.Equal(t, rec.TotalValue, totalValue)
	assert.Equal(t, rec.RealizedGains, realized)
	assert.Equal(t, rec.TotalFees, totalFees)
	assert.Equal(t, rec.TradeCount, tradeCount)
	assert.Equal(t, rec.WinCount, winCount)
}
