package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/bank-ledger-service/internal/domain"
	"github.com/api-sage/bank-ledger-service/internal/logger"
	"github.com/shopspring/decimal"
)

type LedgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// ExecuteTransfer moves amount between two accounts inside one store
// transaction. Row locks are taken in request order (source, then
// destination) and both balance updates are relative adjustments, so
// concurrent transfers touching the same account serialize instead of
// clobbering each other's reads. Lock waits are bounded by the connection's
// statement timeout; a timeout or conflict abort rolls the whole unit back
// and surfaces as a wrapped store error, which callers may retry.
func (r *LedgerRepository) ExecuteTransfer(ctx context.Context, accountFrom int64, accountTo int64, amount decimal.Decimal) (domain.TransferPosting, error) {
	logger.Info("ledger repository execute transfer", logger.Fields{
		"accountFrom": accountFrom,
		"accountTo":   accountTo,
		"amount":      amount,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("ledger repository begin tx failed", err, nil)
		return domain.TransferPosting{}, fmt.Errorf("begin transfer transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var sourceBalance decimal.Decimal
	err = tx.QueryRowContext(ctx, `
SELECT balance
FROM accounts
WHERE id = $1
FOR UPDATE`, accountFrom).Scan(&sourceBalance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrSourceAccountNotFound
			return domain.TransferPosting{}, err
		}
		logger.Error("ledger repository lock source account failed", err, logger.Fields{
			"accountFrom": accountFrom,
		})
		return domain.TransferPosting{}, fmt.Errorf("lock source account: %w", err)
	}

	if sourceBalance.LessThan(amount) {
		err = domain.ErrInsufficientBalance
		return domain.TransferPosting{}, err
	}

	var destinationBalance decimal.Decimal
	err = tx.QueryRowContext(ctx, `
SELECT balance
FROM accounts
WHERE id = $1
FOR UPDATE`, accountTo).Scan(&destinationBalance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrDestinationAccountNotFound
			return domain.TransferPosting{}, err
		}
		logger.Error("ledger repository lock destination account failed", err, logger.Fields{
			"accountTo": accountTo,
		})
		return domain.TransferPosting{}, fmt.Errorf("lock destination account: %w", err)
	}

	posting := domain.TransferPosting{
		Transaction: domain.Transaction{
			AccountFrom: accountFrom,
			AccountTo:   accountTo,
			Amount:      amount,
		},
	}

	err = tx.QueryRowContext(ctx, `
UPDATE accounts
SET balance = balance - $2::numeric,
    updated_at = NOW()
WHERE id = $1
RETURNING balance`, accountFrom, amount).Scan(&posting.NewBalanceFrom)
	if err != nil {
		logger.Error("ledger repository debit source account failed", err, logger.Fields{
			"accountFrom": accountFrom,
		})
		return domain.TransferPosting{}, fmt.Errorf("debit source account: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
UPDATE accounts
SET balance = balance + $2::numeric,
    updated_at = NOW()
WHERE id = $1
RETURNING balance`, accountTo, amount).Scan(&posting.NewBalanceTo)
	if err != nil {
		logger.Error("ledger repository credit destination account failed", err, logger.Fields{
			"accountTo": accountTo,
		})
		return domain.TransferPosting{}, fmt.Errorf("credit destination account: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
INSERT INTO transactions (account_from, account_to, amount)
VALUES ($1, $2, $3)
RETURNING id, created_at`, accountFrom, accountTo, amount).Scan(
		&posting.Transaction.ID,
		&posting.Transaction.CreatedAt,
	)
	if err != nil {
		logger.Error("ledger repository append transaction failed", err, logger.Fields{
			"accountFrom": accountFrom,
			"accountTo":   accountTo,
		})
		return domain.TransferPosting{}, fmt.Errorf("append transaction: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.Error("ledger repository commit tx failed", err, nil)
		return domain.TransferPosting{}, fmt.Errorf("commit transfer transaction: %w", err)
	}

	logger.Info("ledger repository execute transfer success", logger.Fields{
		"transactionId": posting.Transaction.ID,
		"accountFrom":   accountFrom,
		"accountTo":     accountTo,
	})

	return posting, nil
}

func (r *LedgerRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	const query = `
SELECT id, account_from, account_to, amount, created_at
FROM transactions
ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ledger repository list transactions failed", err, nil)
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(
			&transaction.ID,
			&transaction.AccountFrom,
			&transaction.AccountTo,
			&transaction.Amount,
			&transaction.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	return transactions, nil
}
