package catalog

import (
	"sort"
	"strings"

	"github.com/stylehaven/storefront/internal/constants"
	"github.com/stylehaven/storefront/internal/models"
)

// Catalog 静态商品目录。所有查询均为无副作用的同步计算，
// 返回的切片是新分配的，调用方可以随意修改。
type Catalog struct {
	products   []models.Product
	categories []models.Category
}

// Default 返回内置的静态目录
func Default() *Catalog {
	return New(defaultProducts, defaultCategories)
}

// New 基于给定数据创建目录
func New(products []models.Product, categories []models.Category) *Catalog {
	return &Catalog{products: products, categories: categories}
}

// Products 返回全部商品（按数据集顺序）
func (c *Catalog) Products() []models.Product {
	return append([]models.Product(nil), c.products...)
}

// Categories 返回全部分类
func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), c.categories...)
}

// ProductByID 按 ID 查找商品，未找到返回 nil
func (c *Catalog) ProductByID(id uint) *models.Product {
	for i := range c.products {
		if c.products[i].ID == id {
			product := c.products[i]
			return &product
		}
	}
	return nil
}

// CategoryBySlug 按 slug 查找分类（大小写不敏感），未找到返回 nil
func (c *Catalog) CategoryBySlug(slug string) *models.Category {
	for i := range c.categories {
		if strings.EqualFold(c.categories[i].Slug, slug) {
			category := c.categories[i]
			return &category
		}
	}
	return nil
}

// ByCategory 按分类名称筛选（大小写不敏感）。"all" 为哨兵值，返回全部商品。
func ByCategory(products []models.Product, category string) []models.Product {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" || strings.EqualFold(trimmed, constants.CategoryAll) {
		return append([]models.Product(nil), products...)
	}
	result := make([]models.Product, 0, len(products))
	for _, product := range products {
		if strings.EqualFold(product.Category, trimmed) {
			result = append(result, product)
		}
	}
	return result
}

// Search 在名称/描述/分类上做大小写不敏感的子串匹配。空查询匹配全部。
func Search(products []models.Product, query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]models.Product(nil), products...)
	}
	result := make([]models.Product, 0, len(products))
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Name), q) ||
			strings.Contains(strings.ToLower(product.Description), q) ||
			strings.Contains(strings.ToLower(product.Category), q) {
			result = append(result, product)
		}
	}
	return result
}

// Sort 按给定顺序排序并返回新切片。排序是稳定的：同值元素保持输入顺序。
// 未知排序值按 newest 处理。
func Sort(products []models.Product, order string) []models.Product {
	result := append([]models.Product(nil), products...)
	switch order {
	case constants.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.Cmp(result[j].Price.Decimal) < 0
		})
	case constants.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.Cmp(result[j].Price.Decimal) > 0
		})
	case constants.SortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	default:
		// newest：按上架时间倒序
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}
	return result
}

// FilterByTag 按标签筛选（featured/trending/new/sale），保持输入顺序。
// 未知标签返回全部。
func FilterByTag(products []models.Product, tag string) []models.Product {
	var matches func(models.Product) bool
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case constants.FilterFeatured:
		matches = func(p models.Product) bool { return p.Featured }
	case constants.FilterTrending:
		matches = func(p models.Product) bool { return p.Trending }
	case constants.FilterNew:
		matches = func(p models.Product) bool { return p.New }
	case constants.FilterSale:
		matches = func(p models.Product) bool { return p.Sale }
	default:
		return append([]models.Product(nil), products...)
	}
	result := make([]models.Product, 0, len(products))
	for _, product := range products {
		if matches(product) {
			result = append(result, product)
		}
	}
	return result
}

// PriceRange 价格/评分范围筛选参数。nil 字段表示不限制。
type PriceRange struct {
	MinPrice  *models.Money
	MaxPrice  *models.Money
	MinRating *float64
}

// FilterByRange 按价格区间与最低评分筛选，保持输入顺序。
func FilterByRange(products []models.Product, r PriceRange) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, product := range products {
		if r.MinPrice != nil && product.Price.Cmp(r.MinPrice.Decimal) < 0 {
			continue
		}
		if r.MaxPrice != nil && product.Price.Cmp(r.MaxPrice.Decimal) > 0 {
			continue
		}
		if r.MinRating != nil && product.Rating < *r.MinRating {
			continue
		}
		result = append(result, product)
	}
	return result
}

// Featured 精选商品子集
func (c *Catalog) Featured() []models.Product {
	return FilterByTag(c.products, constants.FilterFeatured)
}

// Trending 热门商品子集
func (c *Catalog) Trending() []models.Product {
	return FilterByTag(c.products, constants.FilterTrending)
}

// NewArrivals 新品子集
func (c *Catalog) NewArrivals() []models.Product {
	return FilterByTag(c.products, constants.FilterNew)
}

// Sale 促销商品子集
func (c *Catalog) Sale() []models.Product {
	return FilterByTag(c.products, constants.FilterSale)
}
