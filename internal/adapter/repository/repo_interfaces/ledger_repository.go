package repo_interfaces

import (
	"context"

	"github.com/api-sage/bank-ledger-service/internal/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepository executes transfer postings as a single atomic unit: both
// balance adjustments and the appended ledger entry commit together or not at
// all.
type LedgerRepository interface {
	ExecuteTransfer(ctx context.Context, accountFrom int64, accountTo int64, amount decimal.Decimal) (domain.TransferPosting, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}
