package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatExecutionOrg renders an ExecutionRecord as an Org-mode block
// suitable for pasting into a trading journal. Structured facts live
// in a PROPERTIES drawer for easy search; narrative placeholders
// (Thesis/Execution/Review) are left for the author.
func FormatExecutionOrg(r ExecutionRecord) string {
	heading := fmt.Sprintf("** Trade: %s %s (%s)", r.Side, r.Symbol, shortID(r.ExecID))
	executed := r.ExecutedAt.UTC().Format(time.RFC3339)

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":EXEC_ID: %s\n", r.ExecID))
	b.WriteString(fmt.Sprintf(":IDENTITY: %s\n", r.Identity))
	b.WriteString(fmt.Sprintf(":SYMBOL: %s\n", r.Symbol))
	b.WriteString(fmt.Sprintf(":SIDE: %s\n", r.Side))
	b.WriteString(fmt.Sprintf(":QUANTITY: %d\n", r.Quantity))
	b.WriteString(fmt.Sprintf(":PRICE: %d\n", r.Price))
	b.WriteString(fmt.Sprintf(":NOTIONAL: %d\n", r.Notional))
	b.WriteString(fmt.Sprintf(":FEE: %d\n", r.Fee))
	b.WriteString(fmt.Sprintf(":REALIZED_GAIN: %d\n", r.RealizedGain))
	b.WriteString(fmt.Sprintf(":WIN: %t\n", r.Win))
	b.WriteString(fmt.Sprintf(":EXECUTED_AT: %s\n", executed))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Thesis\n- \n\n")
	b.WriteString("*** Execution\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatExecutionsOrg renders multiple executions separated by blank lines.
func FormatExecutionsOrg(recs []ExecutionRecord) string {
	var b strings.Builder
	for i, r := range recs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatExecutionOrg(r))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
