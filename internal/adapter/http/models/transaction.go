package models

type TransactionResponse struct {
	ID          int64  `json:"id"`
	AccountFrom int64  `json:"account_from"`
	AccountTo   int64  `json:"account_to"`
	Amount      string `json:"amount"`
	CreatedAt   string `json:"created_at"`
}
