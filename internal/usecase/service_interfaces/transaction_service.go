package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-ledger-service/internal/adapter/http/models"
	"github.com/api-sage/bank-ledger-service/internal/commons"
)

type TransactionService interface {
	ListTransactions(ctx context.Context) (commons.Response[[]models.TransactionResponse], error)
}
