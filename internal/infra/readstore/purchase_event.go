package readstore

import (
	"context"

	"vmarket/internal/infra"
	"vmarket/internal/infra/db"
	"vmarket/internal/usecase/queries"
)

type PurchaseEventReadStore struct {
	db db.DBTX
}

func NewPurchaseEventReadStore(dbtx db.DBTX) *PurchaseEventReadStore {
	return &PurchaseEventReadStore{db: dbtx}
}

func (r *PurchaseEventReadStore) ListByBuyer(ctx context.Context, buyerUsername string) ([]*queries.PurchaseEventView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, item_title, created_at
		FROM purchase_events
		WHERE buyer_username = $1
		ORDER BY created_at DESC
	`, buyerUsername)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list purchase events", err)
	}
	defer rows.Close()

	var views []*queries.PurchaseEventView
	for rows.Next() {
		var v queries.PurchaseEventView
		if err := rows.Scan(&v.ID, &v.ItemTitle, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan purchase event row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate purchase event rows", err)
	}
	return views, nil
}
