package controller

import (
	"net/http"

	"github.com/api-sage/bank-ledger-service/internal/adapter/http/models"
	"github.com/api-sage/bank-ledger-service/internal/commons"
	"github.com/api-sage/bank-ledger-service/internal/usecase/service_interfaces"
)

type TransactionController struct {
	service service_interfaces.TransactionService
}

func NewTransactionController(service service_interfaces.TransactionService) *TransactionController {
	return &TransactionController{service: service}
}

func (c *TransactionController) RegisterRoutes(mux *http.ServeMux, middleware func(http.Handler) http.Handler) {
	handler := http.Handler(http.HandlerFunc(c.listTransactions))
	if middleware != nil {
		handler = middleware(handler)
	}

	mux.Handle("/transactions", handler)
}

func (c *TransactionController) listTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[[]models.TransactionResponse]("method not allowed"))
		return
	}

	response, err := c.service.ListTransactions(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
