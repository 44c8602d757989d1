package repository

import (
	"context"
	"time"

	"vmarket/internal/infra"
	"vmarket/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) Create(ctx context.Context, sellerID uuid.UUID, buyerUsername, productTitle string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notifications (seller_id, buyer_username, product_title, is_read, created_at)
		VALUES ($1, $2, $3, false, $4)
	`, sellerID, buyerUsername, productTitle, at)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = true WHERE seller_id = $1 AND is_read = false`, sellerID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return tag.RowsAffected(), nil
}
