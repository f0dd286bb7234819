package models

import "time"

// Variant 购物车项选中的规格（尺码/颜色）
type Variant struct {
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// IsZero 判断是否未选规格
func (v Variant) IsZero() bool {
	return v.Size == "" && v.Color == ""
}

// CartLine 购物车行项（商品快照 + 数量）
// 唯一键为 ProductID：同一商品重复加入时合并数量，规格不参与唯一键。
type CartLine struct {
	ProductID uint     `json:"productId"`         // 商品ID
	Name      string   `json:"name"`              // 加入时的商品名称快照
	Price     Money    `json:"price"`             // 加入时的单价快照
	Image     string   `json:"image"`             // 加入时的主图快照
	Quantity  int      `json:"quantity"`          // 数量（正整数）
	Variant   *Variant `json:"variant,omitempty"` // 选中规格（可空）
}

// CartSession 会话购物车表：每个匿名会话一行，行项整体序列化存储
type CartSession struct {
	SessionID string    `gorm:"primarykey;type:varchar(64)" json:"session_id"` // 会话ID（uuid）
	Payload   string    `gorm:"type:text" json:"-"`                            // 行项 JSON 载荷
	CreatedAt time.Time `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                       // 更新时间
}

// TableName 指定表名
func (CartSession) TableName() string {
	return "cart_sessions"
}
