package journal

import (
	"database/sql"
	"fmt"
	"time"
)

// GetExecution returns a single execution record by ID.
func (j *SQLite) GetExecution(execID string) (ExecutionRecord, error) {
	row := j.db.QueryRow(`
		SELECT exec_id, identity, symbol, side, quantity, price, notional, fee, realized_gain, win, executed_at
		FROM executions
		WHERE exec_id = ?`, execID)

	rec, err := scanExecution(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return ExecutionRecord{}, fmt.Errorf("execution %q not found", execID)
		}
		return ExecutionRecord{}, err
	}
	return rec, nil
}

// ListExecutionsByIdentity returns all of one identity's executions,
// oldest first.
func (j *SQLite) ListExecutionsByIdentity(identity string) ([]ExecutionRecord, error) {
	rows, err := j.db.Query(`
		SELECT exec_id, identity, symbol, side, quantity, price, notional, fee, realized_gain, win, executed_at
		FROM executions
		WHERE identity = ?
		ORDER BY executed_at ASC`, identity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectExecutions(rows)
}

// ListExecutionsBetween returns executions with executed_at in [start, end).
func (j *SQLite) ListExecutionsBetween(start, end time.Time) ([]ExecutionRecord, error) {
	rows, err := j.db.Query(`
		SELECT exec_id, identity, symbol, side, quantity, price, notional, fee, realized_gain, win, executed_at
		FROM executions
		WHERE executed_at >= ? AND executed_at < ?
		ORDER BY executed_at ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectExecutions(rows)
}

// ListSnapshotsBetween returns snapshots with time in [start, end).
func (j *SQLite) ListSnapshotsBetween(start, end time.Time) ([]PortfolioSnapshot, error) {
	rows, err := j.db.Query(`
		SELECT time, identity, balance, total_value, realized_gains, total_fees, trade_count, win_count
		FROM snapshots
		WHERE time >= ? AND time < ?
		ORDER BY time ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PortfolioSnapshot
	for rows.Next() {
		var s PortfolioSnapshot
		if err := rows.Scan(
			&s.Time,
			&s.Identity,
			&s.Balance,
			&s.TotalValue,
			&s.RealizedGains,
			&s.TotalFees,
			&s.TradeCount,
			&s.WinCount,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExecution(row rowScanner) (ExecutionRecord, error) {
	var rec ExecutionRecord
	err := row.Scan(
		&rec.ExecID,
		&rec.Identity,
		&rec.Symbol,
		&rec.Side,
		&rec.Quantity,
		&rec.Price,
		&rec.Notional,
		&rec.Fee,
		&rec.RealizedGain,
		&rec.Win,
		&rec.ExecutedAt,
	)
	return rec, err
}

func collectExecutions(rows *sql.Rows) ([]ExecutionRecord, error) {
	var out []ExecutionRecord
	for rows.Next() {
		rec, err := scanExecution(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
