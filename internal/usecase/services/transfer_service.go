package services

import (
	"context"
	"errors"

	"github.com/api-sage/bank-ledger-service/internal/adapter/http/models"
	"github.com/api-sage/bank-ledger-service/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-ledger-service/internal/commons"
	"github.com/api-sage/bank-ledger-service/internal/domain"
	"github.com/api-sage/bank-ledger-service/internal/logger"
	"github.com/google/uuid"
)

type TransferService struct {
	ledgerRepo repo_interfaces.LedgerRepository
	notifier   domain.TransferNotifier
}

func NewTransferService(
	ledgerRepo repo_interfaces.LedgerRepository,
	notifier domain.TransferNotifier,
) *TransferService {
	return &TransferService{
		ledgerRepo: ledgerRepo,
		notifier:   notifier,
	}
}

// TransferFunds validates and executes a single money movement. The posting
// either fully applies (both balance changes plus the ledger entry) or has no
// effect; the notifier is handed the event only after the store reports a
// successful commit, and delivery never delays the response. On a store
// failure the caller may retry the identical request, because nothing
// committed.
func (s *TransferService) TransferFunds(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("transfer service transfer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	posting, err := s.ledgerRepo.ExecuteTransfer(ctx, req.AccountFrom, req.AccountTo, req.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrSourceAccountNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Source account not found"), err
		}
		if errors.Is(err, domain.ErrDestinationAccountNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Destination account not found"), err
		}
		if errors.Is(err, domain.ErrInsufficientBalance) {
			return commons.ErrorResponse[models.TransferResponse]("Insufficient balance", err.Error()), err
		}
		logger.Error("transfer service posting failed", err, logger.Fields{
			"accountFrom": req.AccountFrom,
			"accountTo":   req.AccountTo,
		})
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	event := domain.TransferEvent{
		EventID:        uuid.NewString(),
		AccountFrom:    posting.Transaction.AccountFrom,
		AccountTo:      posting.Transaction.AccountTo,
		Amount:         posting.Transaction.Amount,
		NewBalanceFrom: posting.NewBalanceFrom,
		NewBalanceTo:   posting.NewBalanceTo,
		CreatedAt:      posting.Transaction.CreatedAt,
	}
	if s.notifier != nil {
		// Dispatched off the request path; the goroutine starts only after
		// the store has committed.
		go s.notifier.NotifyTransfer(event)
	}

	response := models.TransferResponse{
		TransactionID:  posting.Transaction.ID,
		AccountFrom:    posting.Transaction.AccountFrom,
		AccountTo:      posting.Transaction.AccountTo,
		Amount:         posting.Transaction.Amount.StringFixed(2),
		NewBalanceFrom: posting.NewBalanceFrom.StringFixed(2),
		NewBalanceTo:   posting.NewBalanceTo.StringFixed(2),
		CreatedAt:      posting.Transaction.CreatedAt.Format(timeFormat),
	}

	logger.Info("transfer service transfer success", logger.Fields{
		"transactionId": response.TransactionID,
		"eventId":       event.EventID,
	})

	return commons.SuccessResponse("Transfer completed successfully", response), nil
}
