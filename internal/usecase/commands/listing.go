package commands

import (
	"context"

	"vmarket/internal/domain/listing"
	"vmarket/internal/infra"
	"vmarket/internal/pkg/clock"
	"vmarket/internal/pkg/errs"
	"vmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateListingInput struct {
	Title       string
	Description string
	Price       int
	Link        string
	IsInfinite  bool
	Stock       *int
}

type ListingCommands interface {
	Create(ctx context.Context, sellerID uuid.UUID, input CreateListingInput) (uuid.UUID, error)
}

type listingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewListingCommands(uow shared.UnitOfWork, clock clock.Clock) ListingCommands {
	return &listingCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

// Create validates everything before touching the store, then inserts
// the listing with the seller's current username denormalized onto it.
// New listings are never accepted; moderation happens out of band.
func (c *listingCommandsImpl) Create(ctx context.Context, sellerID uuid.UUID, input CreateListingInput) (uuid.UUID, error) {
	title, err := listing.NewTitle(input.Title)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	price, err := listing.NewPrice(input.Price)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	stock, err := buildStock(input.IsInfinite, input.Stock)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var listingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		seller, err := tx.Users().FindByID(ctx, sellerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrProfileMissing
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		entity, err := listing.NewListing(title, input.Description, price, input.Link, stock, seller.ID, seller.Username)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Listings().Create(ctx, entity, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		listingID = entity.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return listingID, nil
}

func buildStock(isInfinite bool, count *int) (listing.Stock, error) {
	if isInfinite {
		return listing.InfiniteStock(), nil
	}
	if count == nil {
		return listing.Stock{}, listing.ErrInvalidStock
	}
	return listing.NewFiniteStock(*count)
}
