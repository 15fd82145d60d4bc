package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/api-sage/bank-ledger-service/internal/adapter/repository/memory"
	"github.com/api-sage/bank-ledger-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerStoreExecuteTransferSentinels(t *testing.T) {
	store := memory.NewLedgerStore()
	account, err := store.Create(context.Background(), domain.Account{
		Name:    "alice",
		Balance: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	_, err = store.ExecuteTransfer(context.Background(), 99, account.ID, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrSourceAccountNotFound)

	_, err = store.ExecuteTransfer(context.Background(), account.ID, 99, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrDestinationAccountNotFound)

	_, err = store.ExecuteTransfer(context.Background(), account.ID, 99, decimal.NewFromInt(100))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestLedgerStoreExecuteTransferReturnsCommittedBalances(t *testing.T) {
	store := memory.NewLedgerStore()
	from, err := store.Create(context.Background(), domain.Account{Name: "a", Balance: decimal.NewFromInt(100)})
	require.NoError(t, err)
	to, err := store.Create(context.Background(), domain.Account{Name: "b", Balance: decimal.NewFromInt(50)})
	require.NoError(t, err)

	posting, err := store.ExecuteTransfer(context.Background(), from.ID, to.ID, decimal.NewFromInt(30))
	require.NoError(t, err)

	assert.True(t, posting.NewBalanceFrom.Equal(decimal.NewFromInt(70)))
	assert.True(t, posting.NewBalanceTo.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, int64(1), posting.Transaction.ID)
	assert.False(t, posting.Transaction.CreatedAt.IsZero())
}

func TestLedgerStoreTransactionIDsAreInsertionOrdered(t *testing.T) {
	store := memory.NewLedgerStore()
	from, err := store.Create(context.Background(), domain.Account{Name: "a", Balance: decimal.NewFromInt(100)})
	require.NoError(t, err)
	to, err := store.Create(context.Background(), domain.Account{Name: "b", Balance: decimal.Zero})
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		posting, err := store.ExecuteTransfer(context.Background(), from.ID, to.ID, decimal.NewFromInt(1))
		require.NoError(t, err)
		assert.Equal(t, int64(i), posting.Transaction.ID)
	}
}

func TestLedgerStoreConcurrentTransfersNeverOverdraw(t *testing.T) {
	store := memory.NewLedgerStore()
	from, err := store.Create(context.Background(), domain.Account{Name: "a", Balance: decimal.NewFromInt(100)})
	require.NoError(t, err)
	to, err := store.Create(context.Background(), domain.Account{Name: "b", Balance: decimal.Zero})
	require.NoError(t, err)

	const workers = 50

	var wg sync.WaitGroup
	var mu sync.Mutex
	var successes int

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := store.ExecuteTransfer(context.Background(), from.ID, to.ID, decimal.NewFromInt(10))
			if err != nil && !errors.Is(err, domain.ErrInsufficientBalance) {
				t.Errorf("unexpected transfer error: %v", err)
				return
			}
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, successes)

	source, err := store.GetByID(context.Background(), from.ID)
	require.NoError(t, err)
	destination, err := store.GetByID(context.Background(), to.ID)
	require.NoError(t, err)

	assert.True(t, source.Balance.Equal(decimal.Zero))
	assert.True(t, destination.Balance.Equal(decimal.NewFromInt(100)))

	transactions, err := store.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Len(t, transactions, 10)
}

func TestLedgerStoreNameExists(t *testing.T) {
	store := memory.NewLedgerStore()
	_, err := store.Create(context.Background(), domain.Account{Name: "alice", Balance: decimal.Zero})
	require.NoError(t, err)

	exists, err := store.NameExists(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.NameExists(context.Background(), "bob")
	require.NoError(t, err)
	assert.False(t, exists)
}
