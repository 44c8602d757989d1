package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type NotificationView struct {
	ID            int64
	BuyerUsername string
	ProductTitle  string
	IsRead        bool
	CreatedAt     time.Time
}

type NotificationReadStore interface {
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*NotificationView, error)
}

type NotificationQueries interface {
	ListForSeller(ctx context.Context, sellerID uuid.UUID) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListForSeller(ctx context.Context, sellerID uuid.UUID) ([]*NotificationView, error) {
	return q.store.ListBySeller(ctx, sellerID)
}
