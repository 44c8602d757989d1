package response

import (
	"time"

	"vmarket/internal/usecase/queries"
)

type PurchaseEventResponse struct {
	ID        int64     `json:"id"`
	ItemTitle string    `json:"itemTitle"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromPurchaseEventView(v *queries.PurchaseEventView) *PurchaseEventResponse {
	return &PurchaseEventResponse{
		ID:        v.ID,
		ItemTitle: v.ItemTitle,
		CreatedAt: v.CreatedAt,
	}
}
