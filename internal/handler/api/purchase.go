package api

import (
	"errors"
	"net/http"

	resdto "vmarket/internal/handler/dto/response"
	"vmarket/internal/handler/middleware"
	"vmarket/internal/pkg/errs"
	"vmarket/internal/usecase/commands"
	"vmarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PurchaseHandler struct {
	purchaseCommands commands.PurchaseCommands
	purchaseQueries  queries.PurchaseQueries
}

func NewPurchaseHandler(purchaseCommands commands.PurchaseCommands, purchaseQueries queries.PurchaseQueries) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseCommands: purchaseCommands,
		purchaseQueries:  purchaseQueries,
	}
}

// @Summary Purchase listing
// @Description Buy one unit; the item link is the purchase payload
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /listings/{id}/purchase [post]
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	result, err := h.purchaseCommands.Purchase(c.Request.Context(), buyerID, listingID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "This item is not available",
			})
		case errors.Is(err, errs.ErrListingNotAccepted):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "This item is not accepted yet",
			})
		case errors.Is(err, errs.ErrOutOfStock):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "This item is out of stock",
			})
		case errors.Is(err, errs.ErrSelfPurchase):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "You cannot purchase your own item",
			})
		case errors.Is(err, errs.ErrProfileMissing):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User profile not found",
			})
		case errors.Is(err, errs.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "You don't have enough balance",
			})
		case errors.Is(err, errs.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Purchase conflicted with another request, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.PurchaseResponse{
		Message: "Purchase successful",
		Link:    result.Link,
	})
}

// @Summary Purchase history
// @Description The caller's purchase audit trail, newest first
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PurchaseEventResponse
// @Failure 401 {object} map[string]string
// @Router /purchases [get]
func (h *PurchaseHandler) History(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.purchaseQueries.ListForBuyer(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PurchaseEventResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromPurchaseEventView(v)
	}

	c.JSON(http.StatusOK, response)
}
