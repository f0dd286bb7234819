package public

import (
	"errors"

	"github.com/stylehaven/storefront/internal/http/response"
	"github.com/stylehaven/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var cartCommonErrorRules = []mappedHandlerError{
	{target: service.ErrCartSessionMissing, code: response.CodeBadRequest, key: "error.cart_session_missing"},
	{target: service.ErrCartItemInvalid, code: response.CodeBadRequest, key: "error.cart_item_invalid"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var promoCommonErrorRules = []mappedHandlerError{
	{target: service.ErrPromoCodeInvalid, code: response.CodeBadRequest, key: "error.promo_code_invalid"},
	{target: service.ErrPromoCodeExpired, code: response.CodeBadRequest, key: "error.promo_code_expired"},
	{target: service.ErrPromoMinSubtotal, code: response.CodeBadRequest, key: "error.promo_min_subtotal"},
}

var checkoutExtraErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrPaymentMethodInvalid, code: response.CodeBadRequest, key: "error.payment_method_invalid"},
}
