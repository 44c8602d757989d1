//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, username string, balance int64) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, username, balance) VALUES ($1, $2, $3) ON CONFLICT (username) DO NOTHING",
		userID, username, balance)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID))
	}

	return userID
}

type TestListing struct {
	Title      string
	Price      int
	Link       string
	IsInfinite bool
	Stock      *int
	IsAccepted bool
}

func CreateTestListing(t *testing.T, db DBLike, sellerID uuid.UUID, sellerUsername string, l TestListing) uuid.UUID {
	t.Helper()

	listingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO listings (id, title, description, price, link, is_infinite, stock, seller_id, seller_username, is_accepted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, listingID, l.Title, "seeded for tests", l.Price, l.Link, l.IsInfinite, l.Stock, sellerID, sellerUsername, l.IsAccepted, time.Now())
	require.NoError(t, err)

	return listingID
}

func AcceptListing(t *testing.T, db DBLike, listingID uuid.UUID) {
	t.Helper()

	tag, err := db.Exec(context.Background(), "UPDATE listings SET is_accepted = true WHERE id = $1", listingID)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

func GetBalance(t *testing.T, db DBLike, userID uuid.UUID) int64 {
	t.Helper()

	var balance int64
	require.NoError(t, db.QueryRow(context.Background(), "SELECT balance FROM users WHERE id = $1", userID).Scan(&balance))
	return balance
}

func CountGiftCodes(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT count(*) FROM gift_codes").Scan(&n))
	return n
}

func ListingExists(t *testing.T, db DBLike, listingID uuid.UUID) bool {
	t.Helper()

	var exists bool
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT EXISTS(SELECT 1 FROM listings WHERE id = $1)", listingID).Scan(&exists))
	return exists
}

// ResetDB truncates all domain tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), `
		TRUNCATE users, listings, gift_codes, notifications, purchase_events
		RESTART IDENTITY CASCADE
	`)
	return err
}
