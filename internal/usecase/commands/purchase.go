package commands

import (
	"context"

	"vmarket/internal/infra"
	"vmarket/internal/pkg/clock"
	"vmarket/internal/pkg/errs"
	"vmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type PurchaseResult struct {
	Link string
}

type PurchaseCommands interface {
	Purchase(ctx context.Context, buyerID, listingID uuid.UUID) (*PurchaseResult, error)
}

type purchaseCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPurchaseCommands(uow shared.UnitOfWork, clock clock.Clock) PurchaseCommands {
	return &purchaseCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

// Purchase moves exactly the listing price from buyer to seller, records
// the notification and audit event, and decrements or deletes finite
// stock, all inside one serializable transaction. Checks run in spec
// order so the first violated rule names the failure.
func (c *purchaseCommandsImpl) Purchase(ctx context.Context, buyerID, listingID uuid.UUID) (*PurchaseResult, error) {
	var result PurchaseResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Listings().FindByIDForUpdate(ctx, listingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrListingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if !l.IsAccepted {
			return errs.ErrListingNotAccepted
		}

		if !l.IsInfinite && (l.Stock == nil || *l.Stock <= 0) {
			return errs.ErrOutOfStock
		}

		if l.SellerID == buyerID {
			return errs.ErrSelfPurchase
		}

		buyer, err := tx.Users().FindByIDForUpdate(ctx, buyerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrProfileMissing
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		price := int64(l.Price)
		if buyer.Balance < price {
			return errs.ErrInsufficientFunds
		}

		if price > 0 {
			if err := tx.Users().AddBalance(ctx, buyerID, -price); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if err := tx.Users().AddBalance(ctx, l.SellerID, price); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		now := c.clock.Now()
		if err := tx.Notifications().Create(ctx, l.SellerID, buyer.Username, l.Title, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.PurchaseEvents().Create(ctx, buyer.Username, l.Title, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		// A finite listing never sits at zero stock: the last unit
		// deletes the row.
		if !l.IsInfinite {
			remaining := *l.Stock - 1
			if remaining > 0 {
				err = tx.Listings().SetStock(ctx, l.ID, remaining)
			} else {
				err = tx.Listings().Delete(ctx, l.ID)
			}
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		result.Link = l.Link
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
