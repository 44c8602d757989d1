package repository

import (
	"context"
	"time"

	"vmarket/internal/domain/listing"
	"vmarket/internal/infra"
	"vmarket/internal/infra/db"
	"vmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListingRepository struct {
	db db.DBTX
}

func NewListingRepository(dbtx db.DBTX) *ListingRepository {
	return &ListingRepository{db: dbtx}
}

func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing, createdAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO listings (id, title, description, price, link, is_infinite, stock, seller_id, seller_username, is_accepted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		l.ID(),
		l.Title().Value(),
		l.Description(),
		l.Price().Value(),
		l.Link(),
		l.Stock().IsInfinite(),
		l.Stock().Count(),
		l.SellerID(),
		l.SellerUsername(),
		l.IsAccepted(),
		createdAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("listing already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create listing", err)
	}
	return nil
}

func (r *ListingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	var snap shared.ListingSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, price, link, is_infinite, stock, seller_id, seller_username, is_accepted, created_at
		FROM listings
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(
		&snap.ID,
		&snap.Title,
		&snap.Description,
		&snap.Price,
		&snap.Link,
		&snap.IsInfinite,
		&snap.Stock,
		&snap.SellerID,
		&snap.SellerUsername,
		&snap.IsAccepted,
		&snap.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing", err)
	}
	return &snap, nil
}

func (r *ListingRepository) SetStock(ctx context.Context, id uuid.UUID, stock int) error {
	tag, err := r.db.Exec(ctx, `UPDATE listings SET stock = $2 WHERE id = $1`, id, stock)
	if err != nil {
		if isCheckViolation(err) {
			return infra.WrapRepoErr("stock would go non-positive", err, infra.KindCheckFailed)
		}
		return infra.WrapRepoErr("failed to update stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete listing", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}
