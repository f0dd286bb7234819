package service

import (
	"github.com/stylehaven/storefront/internal/catalog"
	"github.com/stylehaven/storefront/internal/models"
)

// ProductListOptions 商品列表查询参数
type ProductListOptions struct {
	Category string
	Search   string
	Sort     string
	Filter   string // featured / trending / new / sale，空值不过滤
	Range    catalog.PriceRange
	Page     int
	PageSize int
}

// CatalogService 目录查询服务：对静态目录的纯函数变换
type CatalogService struct {
	catalog *catalog.Catalog
}

// NewCatalogService 创建目录服务
func NewCatalogService(c *catalog.Catalog) *CatalogService {
	return &CatalogService{catalog: c}
}

// ProductByID 按 ID 查找商品
func (s *CatalogService) ProductByID(id uint) *models.Product {
	return s.catalog.ProductByID(id)
}

// GetProduct 获取商品详情，未找到返回 ErrProductNotFound
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	product := s.catalog.ProductByID(id)
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// GetCategoryBySlug 按 slug 获取分类，未找到返回 ErrCategoryNotFound
func (s *CatalogService) GetCategoryBySlug(slug string) (*models.Category, error) {
	category := s.catalog.CategoryBySlug(slug)
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// ListCategories 获取全部分类
func (s *CatalogService) ListCategories() []models.Category {
	return s.catalog.Categories()
}

// ListProducts 按查询参数筛选、排序并分页。
// 筛选顺序：分类 → 搜索 → 标签 → 区间 → 排序 → 分页。
func (s *CatalogService) ListProducts(opts ProductListOptions) ([]models.Product, int64) {
	result := catalog.ByCategory(s.catalog.Products(), opts.Category)
	result = catalog.Search(result, opts.Search)
	if opts.Filter != "" {
		result = catalog.FilterByTag(result, opts.Filter)
	}
	result = catalog.FilterByRange(result, opts.Range)
	result = catalog.Sort(result, opts.Sort)

	total := int64(len(result))
	if opts.PageSize <= 0 {
		return result, total
	}
	start := (opts.Page - 1) * opts.PageSize
	if start < 0 {
		start = 0
	}
	if start >= len(result) {
		return []models.Product{}, total
	}
	end := start + opts.PageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total
}

// Featured 精选商品
func (s *CatalogService) Featured() []models.Product {
	return s.catalog.Featured()
}

// Trending 热门商品
func (s *CatalogService) Trending() []models.Product {
	return s.catalog.Trending()
}

// NewArrivals 新品
func (s *CatalogService) NewArrivals() []models.Product {
	return s.catalog.NewArrivals()
}

// Sale 促销商品
func (s *CatalogService) Sale() []models.Product {
	return s.catalog.Sale()
}
