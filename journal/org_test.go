package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatExecutionOrg(t *testing.T) {
	t.Parallel()

	executed := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)

	rec := ExecutionRecord{
		ExecID:       "exec-12345678-abcd",
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

	result := FormatExecutionOrg(rec)

	// Check heading
	assert.Contains(t, result, "** Trade: SELL AAPL (exec-123)")

	// Check properties drawer
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":EXEC_ID: exec-12345678-abcd")
	assert.Contains(t, result, ":IDENTITY: PAPER-001")
	assert.Contains(t, result, ":SYMBOL: AAPL")
	assert.Contains(t, result, ":SIDE: SELL")
	assert.Contains(t, result, ":QUANTITY: 5")
	assert.Contains(t, result, ":PRICE: 16000")
	assert.Contains(t, result, ":NOTIONAL: 80000")
	assert.Contains(t, result, ":FEE: 80")
	assert.Contains(t, result, ":REALIZED_GAIN: 4920")
	assert.Contains(t, result, ":WIN: true")
	assert.Contains(t, result, ":EXECUTED_AT: 2024-03-15T10:30:45Z")
	assert.Contains(t, result, ":END:")

	// Check narrative sections
	assert.Contains(t, result, "*** Thesis")
	assert.Contains(t, result, "*** Execution")
	assert.Contains(t, result, "*** Review")
}

func TestFormatExecutionOrgShortID(t *testing.T) {
	t.Parallel()

	rec := ExecutionRecord{
		ExecID:     "short",
		Identity:   "PAPER-001",
		Symbol:     "MSFT",
		Side:       "BUY",
		Quantity:   2,
		Price:      30000,
		Notional:   60000,
		Fee:        60,
		ExecutedAt: time.Now(),
	}

	result := FormatExecutionOrg(rec)
	assert.Contains(t, result, "** Trade: BUY MSFT (short)")
}

func TestFormatExecutionOrgNegativeGain(t *testing.T) {
	t.Parallel()

	rec := ExecutionRecord{
		ExecID:       "loss-exec",
		Identity:     "PAPER-001",
		Symbol:       "AAPL",
		Side:         "SELL",
		Quantity:     5,
		Price:        14000,
		Notional:     70000,
		Fee:          70,
		RealizedGain: -5070,
		Win:          false,
		ExecutedAt:   time.Now(),
	}

	result := FormatExecutionOrg(rec)
	assert.Contains(t, result, ":REALIZED_GAIN: -5070")
	assert.Contains(t, result, ":WIN: false")
}

func TestFormatExecutionsOrg(t *testing.T) {
	t.Parallel()

	t1 := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 1, 11, 10, 0, 0, 0, time.UTC)

	recs := []ExecutionRecord{
		{ExecID: "E1", Identity: "a", Symbol: "AAPL", Side: "BUY", Quantity: 10, Price: 15000, Notional: 150000, Fee: 150, ExecutedAt: t1},
		{ExecID: "E2", Identity: "a", Symbol: "AAPL", Side: "SELL", Quantity: 5, Price: 16000, Notional: 80000, Fee: 80, RealizedGain: 4920, Win: true, ExecutedAt: t2},
	}

	result := FormatExecutionsOrg(recs)
	assert.Contains(t, result, ":EXEC_ID: E1")
	assert.Contains(t, result, ":EXEC_ID: E2")
	assert.Contains(t, result, "\n\n** Trade: SELL AAPL (E2)")

	assert.Empty(t, FormatExecutionsOrg(nil))
}
