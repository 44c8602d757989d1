package repository

import (
	"context"

	"vmarket/internal/infra"
	"vmarket/internal/infra/db"
	"vmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.find(ctx, id, `SELECT id, username, balance FROM users WHERE id = $1`)
}

func (r *UserRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.find(ctx, id, `SELECT id, username, balance FROM users WHERE id = $1 FOR UPDATE`)
}

func (r *UserRepository) find(ctx context.Context, id uuid.UUID, query string) (*shared.UserSnapshot, error) {
	var snap shared.UserSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Username, &snap.Balance)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &snap, nil
}

// AddBalance relies on the balance >= 0 check constraint as a last
// line of defense; callers verify funds under the row lock first.
func (r *UserRepository) AddBalance(ctx context.Context, id uuid.UUID, delta int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET balance = balance + $2 WHERE id = $1`, id, delta)
	if err != nil {
		if isCheckViolation(err) {
			return infra.WrapRepoErr("balance would go negative", err, infra.KindCheckFailed)
		}
		return infra.WrapRepoErr("failed to adjust balance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
