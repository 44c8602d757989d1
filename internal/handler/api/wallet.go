package api

import (
	"errors"
	"net/http"

	reqdto "vmarket/internal/handler/dto/request"
	resdto "vmarket/internal/handler/dto/response"
	"vmarket/internal/handler/middleware"
	"vmarket/internal/pkg/errs"
	"vmarket/internal/usecase/commands"
	"vmarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletCommands commands.WalletCommands
	walletQueries  queries.WalletQueries
}

func NewWalletHandler(walletCommands commands.WalletCommands, walletQueries queries.WalletQueries) *WalletHandler {
	return &WalletHandler{
		walletCommands: walletCommands,
		walletQueries:  walletQueries,
	}
}

// @Summary Get wallet
// @Description The caller's username and current balance
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.WalletResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /wallet [get]
func (h *WalletHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.walletQueries.Get(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProfileMissing):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User profile not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWalletView(view))
}

// @Summary Mint gift code
// @Description Convert balance into a single-use gift code
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MintCodeRequest true "Amount"
// @Success 201 {object} resdto.MintCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wallet/codes [post]
func (h *WalletHandler) MintCode(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.MintCodeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.walletCommands.MintCode(c.Request.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Amount must be a positive integer",
			})
		case errors.Is(err, errs.ErrProfileMissing):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User profile not found",
			})
		case errors.Is(err, errs.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "You don't have enough balance",
			})
		case errors.Is(err, errs.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Mint conflicted with another request, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.MintCodeResponse{
		Message: "Code minted",
		Code:    result.Code,
	})
}

// @Summary Redeem gift code
// @Description Credit a gift code's amount to the caller's balance
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemCodeRequest true "Code"
// @Success 200 {object} resdto.RedeemCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wallet/codes/redeem [post]
func (h *WalletHandler) RedeemCode(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RedeemCodeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.walletCommands.RedeemCode(c.Request.Context(), userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Code is required",
			})
		case errors.Is(err, errs.ErrCodeInvalidOrUsed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid or already used code",
			})
		case errors.Is(err, errs.ErrProfileMissing):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User profile not found",
			})
		case errors.Is(err, errs.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Redeem conflicted with another request, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.RedeemCodeResponse{
		Message: "Code redeemed",
		Amount:  result.Amount,
	})
}
