package ledger

import "fmt"

// Side is the direction of a trade.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// ParseSide converts the wire token into a Side.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	}
	return "", fmt.Errorf("parse side %q: %w", s, ErrInvalidSide)
}

// Trade is the input to the engine. It is applied or rejected whole
// and never stored.
//
// All money values are int64 in the smallest currency unit
// (hundredths of a cent), so arithmetic is exact.
type Trade struct {
	Symbol   string
	Quantity int64
	Price    int64
	Side     Side
}

func (t Trade) Validate() error {
	if t.Side != Buy && t.Side != Sell {
		return fmt.Errorf("trade %s: %w", t.Symbol, ErrInvalidSide)
	}
	if t.Quantity <= 0 {
		return fmt.Errorf("trade %s: %w", t.Symbol, ErrInvalidQuantity)
	}
	if t.Price <= 0 {
		return fmt.Errorf("trade %s: %w", t.Symbol, ErrInvalidPrice)
	}
	return nil
}

// Notional is the gross value of the trade before fees.
func (t Trade) Notional() int64 {
	return t.Quantity * t.Price
}

// DefaultFeeBps is the execution fee in basis points (0.1%).
const DefaultFeeBps int64 = 10

// FeeFor computes the fee on a notional at the given rate,
// rounded toward zero.
func FeeFor(notional, bps int64) int64 {
	return notional * bps / 10_000
}
