package ledger

import (
	"fmt"
	"sort"
	"sync"
)

// Position is one identity's holding in one symbol. Quantity is
// always positive while the record exists; a holding that returns
// to zero is deleted, not kept at zero.
type Position struct {
	Symbol   string
	Quantity int64
	AvgPrice int64
}

// PositionLedger owns the (identity, symbol) keyed holdings.
type PositionLedger struct {
	mtx sync.RWMutex
	// Keyed by identity, then symbol
	positions map[string]map[string]*Position
}

func NewPositionLedger() *PositionLedger {
	return &PositionLedger{
		positions: make(map[string]map[string]*Position),
	}
}

// Get returns a copy of the holding and whether one exists.
// Absence is a normal result, not an error.
func (l *PositionLedger) Get(identity, symbol string) (Position, bool) {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	pos, ok := l.positions[identity][symbol]
	if !ok {
		return Position{}, false
	}
	return *pos, true
}

// ApplyBuy adds quantity at price to the holding, creating it if
// absent. An existing holding reprices to the quantity-weighted
// average entry, integer division:
//
//	newAvg = (oldQty*oldAvg + qty*price) / (oldQty + qty)
func (l *PositionLedger) ApplyBuy(identity, symbol string, quantity, price int64) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	bySymbol := l.positions[identity]
	if bySymbol == nil {
		bySymbol = make(map[string]*Position)
		l.positions[identity] = bySymbol
	}

	pos, ok := bySymbol[symbol]
	if !ok {
		bySymbol[symbol] = &Position{
			Symbol:   symbol,
			Quantity: quantity,
			AvgPrice: price,
		}
		return
	}

	newQty := pos.Quantity + quantity
	pos.AvgPrice = (pos.Quantity*pos.AvgPrice + quantity*price) / newQty
	pos.Quantity = newQty
}

// ApplySell removes quantity from the holding. The average entry
// price does not move on a partial disposal; a fully closed holding
// is deleted.
func (l *PositionLedger) ApplySell(identity, symbol string, quantity int64) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	pos, ok := l.positions[identity][symbol]
	if !ok || pos.Quantity < quantity {
		return fmt.Errorf("sell %d %s for %q: %w", quantity, symbol, identity, ErrInsufficientPosition)
	}

	pos.Quantity -= quantity
	if pos.Quantity == 0 {
		delete(l.positions[identity], symbol)
	}
	return nil
}

// Open returns copies of the identity's holdings, sorted by symbol.
func (l *PositionLedger) Open(identity string) []Position {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	bySymbol := l.positions[identity]
	if len(bySymbol) == 0 {
		return nil
	}

	out := make([]Position, 0, len(bySymbol))
	for _, pos := range bySymbol {
		out = append(out, *pos)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
