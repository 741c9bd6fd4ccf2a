package ledger

import "errors"

// Every failure the ledger can produce is one of these categories.
// Callers match with errors.Is; wrapped messages carry the identity
// or symbol involved.
var (
	ErrAccountExists        = errors.New("account already exists")
	ErrAccountNotFound      = errors.New("account not found")
	ErrNoAccount            = errors.New("no active account")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientPosition = errors.New("insufficient position")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInvalidPrice         = errors.New("price must be positive")
	ErrInvalidSide          = errors.New("side must be BUY or SELL")
)
