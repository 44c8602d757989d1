package response

import "vmarket/internal/usecase/queries"

type WalletResponse struct {
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
}

type MintCodeResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type RedeemCodeResponse struct {
	Message string `json:"message"`
	Amount  int64  `json:"amount"`
}

func FromWalletView(v *queries.WalletView) *WalletResponse {
	return &WalletResponse{
		Username: v.Username,
		Balance:  v.Balance,
	}
}
