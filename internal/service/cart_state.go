package service

import (
	"github.com/stylehaven/storefront/internal/models"

	"github.com/shopspring/decimal"
)

// CartState 购物车状态机。纯内存计算，不做任何 I/O；
// 持久化由 CartService 负责。行项保持插入顺序。
type CartState struct {
	Items []models.CartLine
	Open  bool // 购物车面板是否展开，仅展示状态，不持久化
}

// NewCartState 基于已有行项创建状态
func NewCartState(items []models.CartLine) *CartState {
	if items == nil {
		items = []models.CartLine{}
	}
	return &CartState{Items: items}
}

// Add 加入行项。同一商品已存在时仅累加数量（规格保持首次加入时的值），
// 否则追加到末尾。加入后标记购物车展开。
func (s *CartState) Add(item models.CartLine) {
	for i := range s.Items {
		if s.Items[i].ProductID == item.ProductID {
			s.Items[i].Quantity += item.Quantity
			s.Open = true
			return
		}
	}
	s.Items = append(s.Items, item)
	s.Open = true
}

// Remove 按商品 ID 删除行项，不存在时为空操作
func (s *CartState) Remove(productID uint) {
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity 替换行项数量。quantity < 1 为空操作；
// 删除需显式调用 Remove。
func (s *CartState) UpdateQuantity(productID uint, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			s.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear 无条件清空
func (s *CartState) Clear() {
	s.Items = []models.CartLine{}
}

// Toggle 切换购物车面板展开状态
func (s *CartState) Toggle() {
	s.Open = !s.Open
}

// Count 所有行项数量之和
func (s *CartState) Count() int {
	total := 0
	for _, item := range s.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal 所有行项 单价×数量 之和（精确计算）
func (s *CartState) Subtotal() models.Money {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return models.NewMoneyFromDecimal(total)
}
