package readstore

import (
	"context"

	"vmarket/internal/infra"
	"vmarket/internal/infra/db"
	"vmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.WalletView, error) {
	var v queries.WalletView
	err := r.db.QueryRow(ctx, `SELECT username, balance FROM users WHERE id = $1`, id).Scan(&v.Username, &v.Balance)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &v, nil
}
