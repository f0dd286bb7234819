package service

import (
	"strings"
	"time"

	"github.com/stylehaven/storefront/internal/config"
	"github.com/stylehaven/storefront/internal/logger"
	"github.com/stylehaven/storefront/internal/models"

	"github.com/shopspring/decimal"
)

// promoCode 解析后的优惠码
type promoCode struct {
	code         string
	discountRate decimal.Decimal
	minSubtotal  decimal.Decimal
	expiresAt    *time.Time
}

// PromoResult 优惠码校验结果
type PromoResult struct {
	Code         string       `json:"code"`
	DiscountRate string       `json:"discount_rate"`
	Discount     models.Money `json:"discount"`
}

// PromoService 优惠码服务。码表来自配置，校验为同步计算，
// 失败返回类型化错误而不是固定延迟的模拟响应。
type PromoService struct {
	codes map[string]promoCode
}

// NewPromoService 从配置创建优惠码服务
func NewPromoService(cfg config.PromoConfig) *PromoService {
	codes := make(map[string]promoCode, len(cfg.Codes))
	for _, entry := range cfg.Codes {
		code := strings.ToUpper(strings.TrimSpace(entry.Code))
		if code == "" {
			continue
		}
		parsed := promoCode{
			code:         code,
			discountRate: decimal.NewFromFloat(entry.DiscountRate),
			minSubtotal:  decimal.NewFromFloat(entry.MinSubtotal),
		}
		if raw := strings.TrimSpace(entry.ExpiresAt); raw != "" {
			expiresAt, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				logger.Warnw("promo_code_expires_at_invalid", "code", code, "value", raw)
			} else {
				parsed.expiresAt = &expiresAt
			}
		}
		codes[code] = parsed
	}
	return &PromoService{codes: codes}
}

// Apply 校验优惠码并计算折扣金额。
// 未知码返回 ErrPromoCodeInvalid，过期返回 ErrPromoCodeExpired，
// 小计未达门槛返回 ErrPromoMinSubtotal。
func (s *PromoService) Apply(code string, subtotal models.Money) (*PromoResult, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, ErrPromoCodeInvalid
	}
	promo, ok := s.codes[normalized]
	if !ok {
		return nil, ErrPromoCodeInvalid
	}
	if promo.expiresAt != nil && time.Now().After(*promo.expiresAt) {
		return nil, ErrPromoCodeExpired
	}
	if subtotal.Cmp(promo.minSubtotal) < 0 {
		return nil, ErrPromoMinSubtotal
	}
	discount := subtotal.Mul(promo.discountRate).Round(2)
	return &PromoResult{
		Code:         promo.code,
		DiscountRate: promo.discountRate.String(),
		Discount:     models.NewMoneyFromDecimal(discount),
	}, nil
}
