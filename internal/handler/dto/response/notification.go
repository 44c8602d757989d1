package response

import (
	"time"

	"vmarket/internal/usecase/queries"
)

type NotificationResponse struct {
	ID            int64     `json:"id"`
	BuyerUsername string    `json:"buyerUsername"`
	ProductTitle  string    `json:"productTitle"`
	IsRead        bool      `json:"isRead"`
	CreatedAt     time.Time `json:"createdAt"`
}

type MarkReadResponse struct {
	Message string `json:"message"`
	Updated int64  `json:"updated"`
}

func FromNotificationView(v *queries.NotificationView) *NotificationResponse {
	return &NotificationResponse{
		ID:            v.ID,
		BuyerUsername: v.BuyerUsername,
		ProductTitle:  v.ProductTitle,
		IsRead:        v.IsRead,
		CreatedAt:     v.CreatedAt,
	}
}
