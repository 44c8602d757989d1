package queries

import (
	"context"
	"time"
)

// PurchaseEventView is one row of the append-only purchase audit.
type PurchaseEventView struct {
	ID        int64
	ItemTitle string
	CreatedAt time.Time
}

type PurchaseEventReadStore interface {
	ListByBuyer(ctx context.Context, buyerUsername string) ([]*PurchaseEventView, error)
}

type PurchaseQueries interface {
	ListForBuyer(ctx context.Context, buyerUsername string) ([]*PurchaseEventView, error)
}

type purchaseQueriesImpl struct {
	store PurchaseEventReadStore
}

func NewPurchaseQueries(store PurchaseEventReadStore) PurchaseQueries {
	return &purchaseQueriesImpl{store: store}
}

func (q *purchaseQueriesImpl) ListForBuyer(ctx context.Context, buyerUsername string) ([]*PurchaseEventView, error) {
	return q.store.ListByBuyer(ctx, buyerUsername)
}
