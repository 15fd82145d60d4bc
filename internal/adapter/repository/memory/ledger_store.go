package memory

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/bank-ledger-service/internal/domain"
	"github.com/shopspring/decimal"
)

// LedgerStore is an in-memory implementation of the account and ledger
// repositories. A single mutex serializes every operation, so a transfer is
// atomic with respect to every other call: both balance changes and the
// appended entry become visible together or not at all.
type LedgerStore struct {
	mu                sync.Mutex
	nextAccountID     int64
	nextTransactionID int64
	accounts          map[int64]*domain.Account
	transactions      []domain.Transaction
}

func NewLedgerStore() *LedgerStore {
	return &LedgerStore{accounts: make(map[int64]*domain.Account)}
}

func (s *LedgerStore) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAccountID++
	now := time.Now().UTC()
	account.ID = s.nextAccountID
	account.CreatedAt = now
	account.UpdatedAt = now

	stored := account
	s.accounts[account.ID] = &stored

	return account, nil
}

func (s *LedgerStore) GetByID(_ context.Context, id int64) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrRecordNotFound
	}

	return *account, nil
}

func (s *LedgerStore) NameExists(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.Name == name {
			return true, nil
		}
	}

	return false, nil
}

func (s *LedgerStore) List(_ context.Context) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := make([]domain.Account, 0, len(s.accounts))
	for id := int64(1); id <= s.nextAccountID; id++ {
		if account, ok := s.accounts[id]; ok {
			accounts = append(accounts, *account)
		}
	}

	return accounts, nil
}

func (s *LedgerStore) ExecuteTransfer(_ context.Context, accountFrom int64, accountTo int64, amount decimal.Decimal) (domain.TransferPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	source, ok := s.accounts[accountFrom]
	if !ok {
		return domain.TransferPosting{}, domain.ErrSourceAccountNotFound
	}
	if source.Balance.LessThan(amount) {
		return domain.TransferPosting{}, domain.ErrInsufficientBalance
	}
	destination, ok := s.accounts[accountTo]
	if !ok {
		return domain.TransferPosting{}, domain.ErrDestinationAccountNotFound
	}

	now := time.Now().UTC()
	source.Balance = source.Balance.Sub(amount)
	source.UpdatedAt = now
	destination.Balance = destination.Balance.Add(amount)
	destination.UpdatedAt = now

	s.nextTransactionID++
	transaction := domain.Transaction{
		ID:          s.nextTransactionID,
		AccountFrom: accountFrom,
		AccountTo:   accountTo,
		Amount:      amount,
		CreatedAt:   now,
	}
	s.transactions = append(s.transactions, transaction)

	return domain.TransferPosting{
		Transaction:    transaction,
		NewBalanceFrom: source.Balance,
		NewBalanceTo:   destination.Balance,
	}, nil
}

func (s *LedgerStore) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := make([]domain.Transaction, len(s.transactions))
	copy(transactions, s.transactions)

	return transactions, nil
}
