package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/bank-ledger-service/internal/adapter/http/models"
	"github.com/api-sage/bank-ledger-service/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-ledger-service/internal/commons"
	"github.com/api-sage/bank-ledger-service/internal/domain"
	"github.com/api-sage/bank-ledger-service/internal/logger"
)

const timeFormat = time.RFC3339

type AccountService struct {
	accountRepo repo_interfaces.AccountRepository
}

func NewAccountService(accountRepo repo_interfaces.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service create account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account := domain.Account{
		Name:    strings.TrimSpace(req.Name),
		Balance: req.Balance,
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("account service create account repository failed", err, logger.Fields{
			"name": account.Name,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	response := mapAccountToResponse(created)

	logger.Info("account service create account success", logger.Fields{
		"accountId": response.ID,
		"name":      response.Name,
	})

	return commons.SuccessResponse("Account created successfully", response), nil
}

// CheckName answers whether any account already uses the given name. It is a
// best-effort hint: nothing prevents a concurrent create from taking the name
// between this read and a later insert.
func (s *AccountService) CheckName(ctx context.Context, name string) (commons.Response[models.CheckNameResponse], error) {
	name = strings.TrimSpace(name)
	if name == "" {
		err := fmt.Errorf("name is required")
		return commons.ErrorResponse[models.CheckNameResponse]("validation failed", err.Error()), err
	}

	exists, err := s.accountRepo.NameExists(ctx, name)
	if err != nil {
		logger.Error("account service check name failed", err, logger.Fields{
			"name": name,
		})
		return commons.ErrorResponse[models.CheckNameResponse]("failed to check account name", "Unable to check account name right now"), err
	}

	return commons.SuccessResponse("Account name checked", models.CheckNameResponse{Exists: exists}), nil
}

func (s *AccountService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		logger.Error("account service list accounts failed", err, nil)
		return commons.ErrorResponse[[]models.AccountResponse]("failed to list accounts", "Unable to list accounts right now"), err
	}

	responses := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, mapAccountToResponse(account))
	}

	return commons.SuccessResponse("Accounts retrieved", responses), nil
}

func mapAccountToResponse(account domain.Account) models.AccountResponse {
	return models.AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Balance:   account.Balance.StringFixed(2),
		CreatedAt: account.CreatedAt.Format(timeFormat),
		UpdatedAt: account.UpdatedAt.Format(timeFormat),
	}
}
