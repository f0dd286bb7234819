package public

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stylehaven/storefront/internal/cache"
	"github.com/stylehaven/storefront/internal/catalog"
	"github.com/stylehaven/storefront/internal/http/response"
	"github.com/stylehaven/storefront/internal/models"
	"github.com/stylehaven/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	productListCacheTTL = 60 * time.Second
)

// productListCacheEntry 商品列表缓存条目
type productListCacheEntry struct {
	Items      []models.Product    `json:"items"`
	Pagination response.Pagination `json:"pagination"`
}

// GetProducts 获取商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	// 获取分页参数
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	// 获取筛选参数
	opts := service.ProductListOptions{
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("search")),
		Sort:     strings.TrimSpace(c.Query("sort")),
		Filter:   strings.TrimSpace(c.Query("filter")),
		Range:    parsePriceRange(c),
		Page:     page,
		PageSize: pageSize,
	}

	cacheKey := productListCacheKey(opts)
	var cached productListCacheEntry
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.SuccessWithPage(c, cached.Items, cached.Pagination)
		return
	}

	items, total := h.CatalogService.ListProducts(opts)

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	_ = cache.SetJSON(c.Request.Context(), cacheKey, productListCacheEntry{
		Items:      items,
		Pagination: pagination,
	}, productListCacheTTL)
	response.SuccessWithPage(c, items, pagination)
}

// GetProductByID 根据 ID 获取商品详情
func (h *Handler) GetProductByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.product_id_invalid", nil)
		return
	}

	product, err := h.CatalogService.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			// 404 附带可恢复入口，指引回到商品列表
			response.ErrorWithData(c, response.CodeNotFound, "error.product_not_found", gin.H{
				"hint": "/api/v1/public/products",
			})
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, product)
}

// GetCollections 获取首页橱窗集合（精选/热门/新品/促销）
func (h *Handler) GetCollections(c *gin.Context) {
	response.Success(c, gin.H{
		"featured":     h.CatalogService.Featured(),
		"trending":     h.CatalogService.Trending(),
		"new_arrivals": h.CatalogService.NewArrivals(),
		"sale":         h.CatalogService.Sale(),
	})
}

// GetCategories 获取分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	response.Success(c, gin.H{"items": h.CatalogService.ListCategories()})
}

// GetCategoryBySlug 根据 slug 获取分类
func (h *Handler) GetCategoryBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))

	category, err := h.CatalogService.GetCategoryBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.ErrorWithData(c, response.CodeNotFound, "error.category_not_found", gin.H{
				"hint": "/api/v1/public/categories",
			})
			return
		}
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, category)
}

func parsePriceRange(c *gin.Context) catalog.PriceRange {
	var r catalog.PriceRange
	if raw := strings.TrimSpace(c.Query("min_price")); raw != "" {
		if m, err := parseMoneyParam(raw); err == nil {
			r.MinPrice = m
		}
	}
	if raw := strings.TrimSpace(c.Query("max_price")); raw != "" {
		if m, err := parseMoneyParam(raw); err == nil {
			r.MaxPrice = m
		}
	}
	if raw := strings.TrimSpace(c.Query("min_rating")); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			r.MinRating = &v
		}
	}
	return r
}

func parseMoneyParam(raw string) (*models.Money, error) {
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return nil, err
	}
	m := models.NewMoneyFromString(raw)
	return &m, nil
}

func productListCacheKey(opts service.ProductListOptions) string {
	return fmt.Sprintf("public:products:%s:%s:%s:%s:%s:%s:%s:%d:%d",
		strings.ToLower(opts.Category),
		strings.ToLower(opts.Search),
		opts.Sort,
		opts.Filter,
		moneyParamKey(opts.Range.MinPrice),
		moneyParamKey(opts.Range.MaxPrice),
		ratingParamKey(opts.Range.MinRating),
		opts.Page,
		opts.PageSize,
	)
}

func moneyParamKey(m *models.Money) string {
	if m == nil {
		return "-"
	}
	return m.String()
}

func ratingParamKey(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
