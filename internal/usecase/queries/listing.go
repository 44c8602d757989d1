package queries

import (
	"context"
	"time"

	"vmarket/internal/infra"
	"vmarket/internal/pkg/errs"

	"github.com/google/uuid"
)

// ListingView is the public catalog shape. The link is deliberately
// absent: it is revealed only as the payload of a successful purchase.
type ListingView struct {
	ID             uuid.UUID
	Title          string
	Description    string
	Price          int
	IsInfinite     bool
	Stock          *int
	SellerUsername string
	CreatedAt      time.Time
}

type ListingReadStore interface {
	ListAccepted(ctx context.Context) ([]*ListingView, error)
	FindAcceptedByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type ListingQueries interface {
	List(ctx context.Context) ([]*ListingView, error)
	Get(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type listingQueriesImpl struct {
	store ListingReadStore
}

func NewListingQueries(store ListingReadStore) ListingQueries {
	return &listingQueriesImpl{store: store}
}

func (q *listingQueriesImpl) List(ctx context.Context) ([]*ListingView, error) {
	return q.store.ListAccepted(ctx)
}

func (q *listingQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	view, err := q.store.FindAcceptedByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrListingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
