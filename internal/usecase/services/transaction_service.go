package services

import (
	"context"

	"github.com/api-sage/bank-ledger-service/internal/adapter/http/models"
	"github.com/api-sage/bank-ledger-service/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-ledger-service/internal/commons"
	"github.com/api-sage/bank-ledger-service/internal/logger"
)

type TransactionService struct {
	ledgerRepo repo_interfaces.LedgerRepository
}

func NewTransactionService(ledgerRepo repo_interfaces.LedgerRepository) *TransactionService {
	return &TransactionService{ledgerRepo: ledgerRepo}
}

func (s *TransactionService) ListTransactions(ctx context.Context) (commons.Response[[]models.TransactionResponse], error) {
	transactions, err := s.ledgerRepo.ListTransactions(ctx)
	if err != nil {
		logger.Error("transaction service list transactions failed", err, nil)
		return commons.ErrorResponse[[]models.TransactionResponse]("failed to list transactions", "Unable to list transactions right now"), err
	}

	responses := make([]models.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, models.TransactionResponse{
			ID:          transaction.ID,
			AccountFrom: transaction.AccountFrom,
			AccountTo:   transaction.AccountTo,
			Amount:      transaction.Amount.StringFixed(2),
			CreatedAt:   transaction.CreatedAt.Format(timeFormat),
		})
	}

	return commons.SuccessResponse("Transactions retrieved", responses), nil
}
