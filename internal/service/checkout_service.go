package service

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/stylehaven/storefront/internal/config"
	"github.com/stylehaven/storefront/internal/constants"
	"github.com/stylehaven/storefront/internal/logger"
	"github.com/stylehaven/storefront/internal/models"
	"github.com/stylehaven/storefront/internal/queue"

	"github.com/shopspring/decimal"
)

// ShippingAddress 收货信息
type ShippingAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

// SubmitCheckoutInput 提交结算输入
type SubmitCheckoutInput struct {
	SessionID     string
	Shipping      ShippingAddress
	PaymentMethod string
	PromoCode     string
}

// CheckoutQuote 结算金额明细
type CheckoutQuote struct {
	Subtotal models.Money `json:"subtotal"`
	Discount models.Money `json:"discount"`
	Shipping models.Money `json:"shipping"`
	Tax      models.Money `json:"tax"`
	Total    models.Money `json:"total"`
}

// CheckoutResult 结算结果。订单为临时对象：仅返回展示用订单号，不落库。
type CheckoutResult struct {
	OrderNumber string        `json:"order_number"`
	Quote       CheckoutQuote `json:"quote"`
	ItemCount   int           `json:"item_count"`
	SubmittedAt time.Time     `json:"submitted_at"`
}

// CheckoutService 结算服务（模拟提交）。
// 提交不经过任何真实支付网关：计算金额、生成订单号、
// 投递确认任务后清空购物车并同步返回。
type CheckoutService struct {
	cartService  *CartService
	promoService *PromoService
	queueClient  *queue.Client

	freeShippingThreshold decimal.Decimal
	flatShippingFee       decimal.Decimal
	taxRate               decimal.Decimal
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(cartService *CartService, promoService *PromoService, queueClient *queue.Client, cfg config.CheckoutConfig) *CheckoutService {
	return &CheckoutService{
		cartService:           cartService,
		promoService:          promoService,
		queueClient:           queueClient,
		freeShippingThreshold: decimal.NewFromFloat(cfg.FreeShippingThreshold),
		flatShippingFee:       decimal.NewFromFloat(cfg.FlatShippingFee),
		taxRate:               decimal.NewFromFloat(cfg.TaxRate),
	}
}

// Quote 计算当前购物车的金额明细（可选优惠码）
func (s *CheckoutService) Quote(sessionID, promoCode string) (*CheckoutQuote, error) {
	cart, err := s.cartService.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.quoteOf(cart, promoCode)
}

// Submit 提交结算。购物车为空返回 ErrCartEmpty；
// 成功后投递订单确认任务并清空购物车。
func (s *CheckoutService) Submit(input SubmitCheckoutInput) (*CheckoutResult, error) {
	if !isValidPaymentMethod(input.PaymentMethod) {
		return nil, ErrPaymentMethodInvalid
	}
	cart, err := s.cartService.Get(input.SessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}
	quote, err := s.quoteOf(cart, input.PromoCode)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := &CheckoutResult{
		OrderNumber: newOrderNumber(),
		Quote:       *quote,
		ItemCount:   cart.Count,
		SubmittedAt: now,
	}

	// 确认走异步队列：这是原本固定延迟模拟的显式异步边界
	if err := s.queueClient.EnqueueOrderConfirmation(queue.OrderConfirmationPayload{
		OrderNumber: result.OrderNumber,
		Email:       input.Shipping.Email,
		Total:       quote.Total.String(),
		ItemCount:   cart.Count,
		SubmittedAt: now,
	}); err != nil {
		logger.Warnw("checkout_confirmation_enqueue_failed",
			"order_number", result.OrderNumber,
			"error", err,
		)
	}

	if _, err := s.cartService.Clear(input.SessionID); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *CheckoutService) quoteOf(cart *CartView, promoCode string) (*CheckoutQuote, error) {
	subtotal := cart.Subtotal

	discount := decimal.Zero
	if strings.TrimSpace(promoCode) != "" {
		promo, err := s.promoService.Apply(promoCode, subtotal)
		if err != nil {
			return nil, err
		}
		discount = promo.Discount.Decimal
	}

	// 小计达到门槛免运费，否则收取固定运费
	shipping := s.flatShippingFee
	if subtotal.Cmp(s.freeShippingThreshold) >= 0 {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(s.taxRate).Round(2)
	total := subtotal.Sub(discount).Add(shipping).Add(tax)

	return &CheckoutQuote{
		Subtotal: subtotal,
		Discount: models.NewMoneyFromDecimal(discount),
		Shipping: models.NewMoneyFromDecimal(shipping),
		Tax:      models.NewMoneyFromDecimal(tax),
		Total:    models.NewMoneyFromDecimal(total),
	}, nil
}

func isValidPaymentMethod(method string) bool {
	switch method {
	case constants.PaymentMethodCreditCard, constants.PaymentMethodPaypal, constants.PaymentMethodApplePay:
		return true
	}
	return false
}

// newOrderNumber 生成展示用订单号（#STH + 6 位随机数字）
func newOrderNumber() string {
	return fmt.Sprintf("#%s%d", constants.OrderNumberPrefix, 100000+rand.IntN(900000))
}
