package queries

import (
	"context"

	"vmarket/internal/infra"
	"vmarket/internal/pkg/errs"

	"github.com/google/uuid"
)

type WalletView struct {
	Username string
	Balance  int64
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WalletView, error)
}

type WalletQueries interface {
	Get(ctx context.Context, userID uuid.UUID) (*WalletView, error)
}

type walletQueriesImpl struct {
	store UserReadStore
}

func NewWalletQueries(store UserReadStore) WalletQueries {
	return &walletQueriesImpl{store: store}
}

func (q *walletQueriesImpl) Get(ctx context.Context, userID uuid.UUID) (*WalletView, error) {
	view, err := q.store.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProfileMissing
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
