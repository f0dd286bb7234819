package models

import "time"

// Product 商品（静态目录数据，不落库）
type Product struct {
	ID            uint      `json:"id"`                       // 唯一标识
	Name          string    `json:"name"`                     // 名称
	Description   string    `json:"description"`              // 描述
	Price         Money     `json:"price"`                    // 现价
	OriginalPrice *Money    `json:"original_price,omitempty"` // 原价（用于折扣展示）
	Images        []string  `json:"images"`                   // 图片列表（有序）
	Category      string    `json:"category"`                 // 分类名称
	Rating        float64   `json:"rating"`                   // 评分（0-5）
	Reviews       int       `json:"reviews"`                  // 评价数量
	InStock       bool      `json:"in_stock"`                 // 是否有货
	New           bool      `json:"new,omitempty"`            // 新品标签
	Sale          bool      `json:"sale,omitempty"`           // 促销标签
	Trending      bool      `json:"trending,omitempty"`       // 热门标签
	Featured      bool      `json:"featured,omitempty"`       // 精选标签
	Sizes         []string  `json:"sizes,omitempty"`          // 可选尺码
	Colors        []string  `json:"colors,omitempty"`         // 可选颜色
	CreatedAt     time.Time `json:"created_at"`               // 上架时间（newest 排序依据）
}

// Category 商品分类（静态目录数据，不落库）
type Category struct {
	ID          uint   `json:"id"`          // 唯一标识
	Name        string `json:"name"`        // 名称
	Slug        string `json:"slug"`        // URL 唯一标识
	Image       string `json:"image"`       // 封面图
	Description string `json:"description"` // 描述
}
