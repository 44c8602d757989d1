package readstore

import (
	"context"

	"vmarket/internal/infra"
	"vmarket/internal/infra/db"
	"vmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingReadStore struct {
	db db.DBTX
}

func NewListingReadStore(dbtx db.DBTX) *ListingReadStore {
	return &ListingReadStore{db: dbtx}
}

func (r *ListingReadStore) ListAccepted(ctx context.Context) ([]*queries.ListingView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, price, is_infinite, stock, seller_username, created_at
		FROM listings
		WHERE is_accepted = true
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings", err)
	}
	defer rows.Close()

	var views []*queries.ListingView
	for rows.Next() {
		var v queries.ListingView
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.Price, &v.IsInfinite, &v.Stock, &v.SellerUsername, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan listing row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate listing rows", err)
	}
	return views, nil
}

func (r *ListingReadStore) FindAcceptedByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	var v queries.ListingView
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, price, is_infinite, stock, seller_username, created_at
		FROM listings
		WHERE id = $1 AND is_accepted = true
	`, id).Scan(&v.ID, &v.Title, &v.Description, &v.Price, &v.IsInfinite, &v.Stock, &v.SellerUsername, &v.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing", err)
	}
	return &v, nil
}
