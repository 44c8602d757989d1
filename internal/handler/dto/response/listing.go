package response

import (
	"time"

	"vmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateListingResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

type PurchaseResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

type ListingResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Price          int       `json:"price"`
	IsInfinite     bool      `json:"isInfinite"`
	Stock          *int      `json:"stock,omitempty"`
	SellerUsername string    `json:"sellerUsername"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromListingView(v *queries.ListingView) *ListingResponse {
	return &ListingResponse{
		ID:             v.ID,
		Title:          v.Title,
		Description:    v.Description,
		Price:          v.Price,
		IsInfinite:     v.IsInfinite,
		Stock:          v.Stock,
		SellerUsername: v.SellerUsername,
		CreatedAt:      v.CreatedAt,
	}
}
