package repository

import (
	"context"

	"vmarket/internal/infra"
	"vmarket/internal/infra/db"
)

type GiftCodeRepository struct {
	db db.DBTX
}

func NewGiftCodeRepository(dbtx db.DBTX) *GiftCodeRepository {
	return &GiftCodeRepository{db: dbtx}
}

func (r *GiftCodeRepository) Insert(ctx context.Context, code string, amount int64) error {
	_, err := r.db.Exec(ctx, `INSERT INTO gift_codes (code, amount) VALUES ($1, $2)`, code, amount)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert gift code", err)
	}
	return nil
}

// DeleteReturningAmount deletes and reads in one statement so a code
// can never be credited twice: the second deleter sees no row.
func (r *GiftCodeRepository) DeleteReturningAmount(ctx context.Context, code string) (int64, error) {
	var amount int64
	err := r.db.QueryRow(ctx, `DELETE FROM gift_codes WHERE code = $1 RETURNING amount`, code).Scan(&amount)
	if err != nil {
		if isNoRows(err) {
			return 0, infra.WrapRepoErr("gift code not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to consume gift code", err)
	}
	return amount, nil
}
