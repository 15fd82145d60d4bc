package router

import (
	"encoding/json"
	"net/http"
)

type AccountRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, middleware func(http.Handler) http.Handler)
}

type TransferRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, middleware func(http.Handler) http.Handler)
}

type TransactionRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, middleware func(http.Handler) http.Handler)
}

func New(
	accountController AccountRouteRegistrar,
	transferController TransferRouteRegistrar,
	transactionController TransactionRouteRegistrar,
	middleware func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()
	registerRootRoute(mux, middleware)

	if accountController != nil {
		accountController.RegisterRoutes(mux, middleware)
	}
	if transferController != nil {
		transferController.RegisterRoutes(mux, middleware)
	}
	if transactionController != nil {
		transactionController.RegisterRoutes(mux, middleware)
	}

	return mux
}

func registerRootRoute(mux *http.ServeMux, middleware func(http.Handler) http.Handler) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "bank ledger service"})
	}))
	if middleware != nil {
		handler = middleware(handler)
	}

	mux.Handle("/", handler)
}
