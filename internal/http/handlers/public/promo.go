package public

import (
	"github.com/stylehaven/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ApplyPromoRequest 应用优惠码请求
type ApplyPromoRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyPromo 校验优惠码并返回当前购物车的折扣金额
func (h *Handler) ApplyPromo(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req ApplyPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	cart, err := h.CartService.Get(sessionID)
	if err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "error.cart_fetch_failed")
		return
	}

	result, err := h.PromoService.Apply(req.Code, cart.Subtotal)
	if err != nil {
		respondWithMappedError(c, err, promoCommonErrorRules, response.CodeInternal, "error.promo_apply_failed")
		return
	}
	response.Success(c, result)
}
