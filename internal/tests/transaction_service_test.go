package services_test

import (
	"context"
	"testing"

	"github.com/api-sage/bank-ledger-service/internal/adapter/http/models"
	"github.com/api-sage/bank-ledger-service/internal/adapter/repository/memory"
	"github.com/api-sage/bank-ledger-service/internal/usecase/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionServiceListTransactions(t *testing.T) {
	store := memory.NewLedgerStore()
	from := seedAccount(t, store, "alice", "100")
	to := seedAccount(t, store, "bob", "0")

	transferSvc := services.NewTransferService(store, &captureNotifier{})
	for _, amount := range []string{"10", "20.50"} {
		_, err := transferSvc.TransferFunds(context.Background(), models.TransferRequest{
			AccountFrom: from.ID,
			AccountTo:   to.ID,
			Amount:      decimal.RequireFromString(amount),
		})
		require.NoError(t, err)
	}

	svc := services.NewTransactionService(store)
	response, err := svc.ListTransactions(context.Background())
	require.NoError(t, err)
	require.NotNil(t, response.Data)
	require.Len(t, *response.Data, 2)

	first := (*response.Data)[0]
	second := (*response.Data)[1]
	assert.Equal(t, "10.00", first.Amount)
	assert.Equal(t, "20.50", second.Amount)
	assert.Less(t, first.ID, second.ID)
	assert.Equal(t, from.ID, first.AccountFrom)
	assert.Equal(t, to.ID, first.AccountTo)
}

func TestTransactionServiceListTransactionsEmpty(t *testing.T) {
	svc := services.NewTransactionService(memory.NewLedgerStore())

	response, err := svc.ListTransactions(context.Background())
	require.NoError(t, err)
	require.NotNil(t, response.Data)
	assert.Empty(t, *response.Data)
}
