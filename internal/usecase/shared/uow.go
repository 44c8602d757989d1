package shared

import (
	"context"
	"time"

	"vmarket/internal/domain/listing"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: serializable transaction with bounded retry for the
	// balance/stock mutating operations
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Users() UserRepository
	Listings() ListingRepository
	GiftCodes() GiftCodeRepository
	Notifications() NotificationRepository
	PurchaseEvents() PurchaseEventRepository
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	// FindByIDForUpdate locks the user row for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	AddBalance(ctx context.Context, id uuid.UUID, delta int64) error
}

type ListingRepository interface {
	Create(ctx context.Context, l *listing.Listing, createdAt time.Time) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	SetStock(ctx context.Context, id uuid.UUID, stock int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GiftCodeRepository interface {
	Insert(ctx context.Context, code string, amount int64) error
	// DeleteReturningAmount consumes the code row; a missing row means
	// the code never existed or was already redeemed.
	DeleteReturningAmount(ctx context.Context, code string) (int64, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, sellerID uuid.UUID, buyerUsername, productTitle string, at time.Time) error
	MarkAllRead(ctx context.Context, sellerID uuid.UUID) (int64, error)
}

type PurchaseEventRepository interface {
	Create(ctx context.Context, buyerUsername, itemTitle string, at time.Time) error
}
