package models

import (
	"errors"
	"strings"

	"github.com/api-sage/bank-ledger-service/internal/domain"
	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	AccountFrom int64           `json:"account_from"`
	AccountTo   int64           `json:"account_to"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if r.AccountFrom <= 0 {
		errs = append(errs, "account_from is required")
	}
	if r.AccountTo <= 0 {
		errs = append(errs, "account_to is required")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	} else if r.Amount.Exponent() < -2 {
		errs = append(errs, "amount cannot have more than 2 decimal places")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	if r.AccountFrom == r.AccountTo {
		return domain.ErrSameAccount
	}
	return nil
}

type TransferResponse struct {
	TransactionID  int64  `json:"transaction_id"`
	AccountFrom    int64  `json:"account_from"`
	AccountTo      int64  `json:"account_to"`
	Amount         string `json:"amount"`
	NewBalanceFrom string `json:"new_balance_from"`
	NewBalanceTo   string `json:"new_balance_to"`
	CreatedAt      string `json:"created_at"`
}
