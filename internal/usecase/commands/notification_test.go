//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"vmarket/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAllRead(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("marks only the seller's unread rows", func(t *testing.T) {
		state := newFakeState()
		sellerID := uuid.New()
		otherID := uuid.New()

		state.notifications = []fakeNotification{
			{SellerID: sellerID, BuyerUsername: "b1", ProductTitle: "t1", CreatedAt: now},
			{SellerID: sellerID, BuyerUsername: "b2", ProductTitle: "t2", IsRead: true, CreatedAt: now},
			{SellerID: otherID, BuyerUsername: "b3", ProductTitle: "t3", CreatedAt: now},
		}

		updated, err := commands.NewNotificationCommands(newFakeUoW(state)).MarkAllRead(ctx, sellerID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), updated)

		assert.True(t, state.notifications[0].IsRead)
		assert.True(t, state.notifications[1].IsRead)
		assert.False(t, state.notifications[2].IsRead, "other sellers' rows stay untouched")
	})

	t.Run("no unread rows is not an error", func(t *testing.T) {
		state := newFakeState()

		updated, err := commands.NewNotificationCommands(newFakeUoW(state)).MarkAllRead(ctx, uuid.New())
		require.NoError(t, err)
		assert.Zero(t, updated)
	})
}
