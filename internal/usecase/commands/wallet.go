package commands

import (
	"context"
	"errors"

	"vmarket/internal/domain/giftcode"
	"vmarket/internal/infra"
	"vmarket/internal/pkg/errs"
	"vmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

// maxCodeAttempts bounds regeneration after a duplicate-key insert.
// With 62^16 possible codes a single collision is already a freak event.
const maxCodeAttempts = 3

var errCodeCollision = errs.New("gift code collision")

type MintResult struct {
	Code string
}

type RedeemResult struct {
	Amount int64
}

type WalletCommands interface {
	MintCode(ctx context.Context, userID uuid.UUID, amount int64) (*MintResult, error)
	RedeemCode(ctx context.Context, userID uuid.UUID, code string) (*RedeemResult, error)
}

type walletCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewWalletCommands(uow shared.UnitOfWork) WalletCommands {
	return &walletCommandsImpl{uow: uow}
}

// MintCode moves amount from the caller's balance into code escrow.
// Balance plus outstanding codes is conserved: the decrement and the
// insert commit together or not at all.
func (c *walletCommandsImpl) MintCode(ctx context.Context, userID uuid.UUID, amount int64) (*MintResult, error) {
	gc, err := giftcode.New(amount)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	// A duplicate key poisons the whole transaction, so regeneration
	// restarts it rather than retrying the insert in place.
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			user, err := tx.Users().FindByIDForUpdate(ctx, userID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.ErrProfileMissing
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}

			if user.Balance < gc.Amount() {
				return errs.ErrInsufficientBalance
			}

			if err := tx.Users().AddBalance(ctx, userID, -gc.Amount()); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}

			if err := tx.GiftCodes().Insert(ctx, gc.Code(), gc.Amount()); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return errs.Mark(err, errCodeCollision)
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}

			return nil
		})
		if err == nil {
			return &MintResult{Code: gc.Code()}, nil
		}
		if !errors.Is(err, errCodeCollision) {
			return nil, err
		}
		if regenErr := gc.Regenerate(); regenErr != nil {
			return nil, errs.Mark(regenErr, errs.ErrDatabaseOperationFailed)
		}
	}

	return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

// RedeemCode credits the code's amount back to the caller and consumes
// the code in the same transaction. Absence of the row is the only
// signal; "never existed" and "already redeemed" are indistinguishable
// by design.
func (c *walletCommandsImpl) RedeemCode(ctx context.Context, userID uuid.UUID, code string) (*RedeemResult, error) {
	normalized, err := giftcode.NormalizeCode(code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var result RedeemResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		amount, err := tx.GiftCodes().DeleteReturningAmount(ctx, normalized)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrCodeInvalidOrUsed
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if _, err := tx.Users().FindByID(ctx, userID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrProfileMissing
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Users().AddBalance(ctx, userID, amount); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result.Amount = amount
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
