package journal

const Schema = `
CREATE TABLE IF NOT EXISTS executions (
	exec_id TEXT PRIMARY KEY,
	identity TEXT NOT NULL,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	price INTEGER NOT NULL,
	notional INTEGER NOT NULL,
	fee INTEGER NOT NULL,
	realized_gain INTEGER NOT NULL,
	win INTEGER NOT NULL,
	executed_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_executions_identity ON executions(identity);
CREATE INDEX IF NOT EXISTS idx_executions_executed_at ON executions(executed_at);

CREATE TABLE IF NOT EXISTS snapshots (
	time DATETIME NOT NULL,
	identity TEXT NOT NULL,
	balance INTEGER NOT NULL,
	total_value INTEGER NOT NULL,
	realized_gains INTEGER NOT NULL,
	total_fees INTEGER NOT NULL,
	trade_count INTEGER NOT NULL,
	win_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_time ON snapshots(time);
`
