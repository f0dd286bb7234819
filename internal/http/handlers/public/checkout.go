package public

import (
	"github.com/stylehaven/storefront/internal/http/response"
	"github.com/stylehaven/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitCheckoutRequest 提交结算请求
type SubmitCheckoutRequest struct {
	FirstName string `json:"first_name" binding:"required,min=2"`
	LastName  string `json:"last_name" binding:"required,min=2"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=10"`
	Address   string `json:"address" binding:"required,min=5"`
	City      string `json:"city" binding:"required,min=2"`
	State     string `json:"state" binding:"required"`
	ZipCode   string `json:"zip_code" binding:"required,min=5"`
	Country   string `json:"country" binding:"required"`

	PaymentMethod string `json:"payment_method" binding:"required,oneof=credit-card paypal apple-pay"`
	CardNumber    string `json:"card_number"`
	CardExpiry    string `json:"card_expiry"`
	CardCVC       string `json:"card_cvc"`

	PromoCode string `json:"promo_code"`
	SaveInfo  bool   `json:"save_info"`
}

// SubmitCheckout 提交结算（模拟下单）
func (h *Handler) SubmitCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req SubmitCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	result, err := h.CheckoutService.Submit(service.SubmitCheckoutInput{
		SessionID: sessionID,
		Shipping: service.ShippingAddress{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   req.Address,
			City:      req.City,
			State:     req.State,
			ZipCode:   req.ZipCode,
			Country:   req.Country,
		},
		PaymentMethod: req.PaymentMethod,
		PromoCode:     req.PromoCode,
	})
	if err != nil {
		rules := concatMappedHandlerErrors(cartCommonErrorRules, promoCommonErrorRules, checkoutExtraErrorRules)
		respondWithMappedError(c, err, rules, response.CodeInternal, "error.checkout_failed")
		return
	}
	requestLog(c).Infow("checkout_submitted",
		"order_number", result.OrderNumber,
		"item_count", result.ItemCount,
		"total", result.Quote.Total,
	)
	response.SuccessWithMsg(c, "order_confirmed", result)
}
