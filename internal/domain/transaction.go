package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an immutable ledger entry recorded once per successful
// transfer. Entries are append-only; the store assigns insertion-ordered IDs.
type Transaction struct {
	ID          int64
	AccountFrom int64
	AccountTo   int64
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

// TransferPosting is the result of a committed transfer posting. The balances
// are the values the store holds after the commit, not caller-side arithmetic.
type TransferPosting struct {
	Transaction    Transaction
	NewBalanceFrom decimal.Decimal
	NewBalanceTo   decimal.Decimal
}
