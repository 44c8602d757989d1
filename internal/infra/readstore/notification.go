package readstore

import (
	"context"

	"vmarket/internal/infra"
	"vmarket/internal/infra/db"
	"vmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

func (r *NotificationReadStore) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*queries.NotificationView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, buyer_username, product_title, is_read, created_at
		FROM notifications
		WHERE seller_id = $1
		ORDER BY created_at DESC
	`, sellerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var views []*queries.NotificationView
	for rows.Next() {
		var v queries.NotificationView
		if err := rows.Scan(&v.ID, &v.BuyerUsername, &v.ProductTitle, &v.IsRead, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification rows", err)
	}
	return views, nil
}
