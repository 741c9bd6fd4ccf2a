package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordExecution(r ExecutionRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO executions
		(exec_id, identity, symbol, side, quantity, price, notional, fee, realized_gain, win, executed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ExecID, r.Identity, r.Symbol, r.Side, r.Quantity, r.Price,
		r.Notional, r.Fee, r.RealizedGain, r.Win, r.ExecutedAt,
	)
	return err
}

func (j *SQLite) RecordSnapshot(s PortfolioSnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO snapshots
		(time, identity, balance, total_value, realized_gains, total_fees, trade_count, win_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Time, s.Identity, s.Balance, s.TotalValue,
		s.RealizedGains, s.TotalFees, s.TradeCount, s.WinCount,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
