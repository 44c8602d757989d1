package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent from read-side query
// views (CQRS separation).
type UserSnapshot struct {
	ID       uuid.UUID
	Username string
	Balance  int64
}

type ListingSnapshot struct {
	ID             uuid.UUID
	Title          string
	Description    string
	Price          int
	Link           string
	IsInfinite     bool
	Stock          *int
	SellerID       uuid.UUID
	SellerUsername string
	IsAccepted     bool
	CreatedAt      time.Time
}
