package commands

import (
	"context"

	"vmarket/internal/pkg/errs"
	"vmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	MarkAllRead(ctx context.Context, sellerID uuid.UUID) (int64, error)
}

type notificationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationCommands(uow shared.UnitOfWork) NotificationCommands {
	return &notificationCommandsImpl{uow: uow}
}

func (c *notificationCommandsImpl) MarkAllRead(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	var updated int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Notifications().MarkAllRead(ctx, sellerID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		updated = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
