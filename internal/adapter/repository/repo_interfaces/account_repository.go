package repo_interfaces

import (
	"context"

	"github.com/api-sage/bank-ledger-service/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	GetByID(ctx context.Context, id int64) (domain.Account, error)
	NameExists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]domain.Account, error)
}
