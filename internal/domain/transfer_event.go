package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferEvent is emitted after a transfer posting commits. It is never
// emitted for an aborted posting.
type TransferEvent struct {
	EventID        string          `json:"event_id"`
	AccountFrom    int64           `json:"account_from"`
	AccountTo      int64           `json:"account_to"`
	Amount         decimal.Decimal `json:"amount"`
	NewBalanceFrom decimal.Decimal `json:"new_balance_from"`
	NewBalanceTo   decimal.Decimal `json:"new_balance_to"`
	CreatedAt      time.Time       `json:"created_at"`
}

// TransferNotifier republishes completed-transfer events to interested
// listeners. Implementations must not block the caller on delivery.
type TransferNotifier interface {
	NotifyTransfer(event TransferEvent)
}
