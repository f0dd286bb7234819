package service

import "errors"

// 业务错误定义
var (
	ErrNotFound             = errors.New("record not found")
	ErrCartSessionMissing   = errors.New("cart session missing")
	ErrCartItemInvalid      = errors.New("cart item invalid")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrProductNotFound      = errors.New("product not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrPromoCodeInvalid     = errors.New("promo code invalid")
	ErrPromoCodeExpired     = errors.New("promo code expired")
	ErrPromoMinSubtotal     = errors.New("promo min subtotal not reached")
	ErrPaymentMethodInvalid = errors.New("payment method invalid")
)
