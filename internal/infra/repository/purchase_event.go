package repository

import (
	"context"
	"time"

	"vmarket/internal/infra"
	"vmarket/internal/infra/db"
)

// PurchaseEventRepository appends to the immutable purchase audit log.
type PurchaseEventRepository struct {
	db db.DBTX
}

func NewPurchaseEventRepository(dbtx db.DBTX) *PurchaseEventRepository {
	return &PurchaseEventRepository{db: dbtx}
}

func (r *PurchaseEventRepository) Create(ctx context.Context, buyerUsername, itemTitle string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO purchase_events (buyer_username, item_title, created_at)
		VALUES ($1, $2, $3)
	`, buyerUsername, itemTitle, at)
	if err != nil {
		return infra.WrapRepoErr("failed to create purchase event", err)
	}
	return nil
}
