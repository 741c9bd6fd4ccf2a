package journal

import "time"

// ExecutionRecord is one applied trade as seen by the journal.
// Money fields are int64 in the smallest currency unit.
type ExecutionRecord struct {
	ExecID       string
	Identity     string
	Symbol       string
	Side         string
	Quantity     int64
	Price        int64
	Notional     int64
	Fee          int64
	RealizedGain int64
	Win          bool
	ExecutedAt   time.Time
}

// PortfolioSnapshot captures one identity's aggregate state after
// a trade has been applied.
type PortfolioSnapshot struct {
	Time          time.Time
	Identity      string
	Balance       int64
	TotalValue    int64
	RealizedGains int64
	TotalFees     int64
	TradeCount    int64
	WinCount      int64
}

type Journal interface {
	RecordExecution(ExecutionRecord) error
	RecordSnapshot(PortfolioSnapshot) error
	Close() error
}

// Discard is a Journal that drops every record.
type Discard struct{}

func (Discard) RecordExecution(ExecutionRecord) error  { return nil }
func (Discard) RecordSnapshot(PortfolioSnapshot) error { return nil }
func (Discard) Close() error                           { return nil }
