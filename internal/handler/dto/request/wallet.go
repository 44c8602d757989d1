package request

type MintCodeRequest struct {
	Amount int64 `json:"amount" binding:"required,min=1"`
}

type RedeemCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
