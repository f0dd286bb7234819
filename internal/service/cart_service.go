package service

import (
	"strings"

	"github.com/stylehaven/storefront/internal/models"
	"github.com/stylehaven/storefront/internal/repository"
)

// CartView 购物车视图（用于响应）
type CartView struct {
	Items    []models.CartLine `json:"items"`
	Count    int               `json:"count"`
	Subtotal models.Money      `json:"subtotal"`
	Open     bool              `json:"open"`
}

// AddCartItemInput 加入购物车输入
type AddCartItemInput struct {
	SessionID string
	ProductID uint
	Quantity  int
	Variant   *models.Variant
}

// CartService 购物车服务：单一事实来源。
// 每次命令都会读取会话行项、应用状态机变更并整体回写。
type CartService struct {
	repo    repository.CartSessionRepository
	catalog CatalogReader
}

// CatalogReader 购物车所需的目录查询能力
type CatalogReader interface {
	ProductByID(id uint) *models.Product
}

// NewCartService 创建购物车服务
func NewCartService(repo repository.CartSessionRepository, catalog CatalogReader) *CartService {
	return &CartService{repo: repo, catalog: catalog}
}

// Get 获取会话购物车视图
func (s *CartService) Get(sessionID string) (*CartView, error) {
	state, err := s.loadState(sessionID)
	if err != nil {
		return nil, err
	}
	return viewOf(state), nil
}

// AddItem 加入商品。同一商品已在购物车中时仅累加数量。
// 行项保存加入时的名称/单价/主图快照。
func (s *CartService) AddItem(input AddCartItemInput) (*CartView, error) {
	if input.ProductID == 0 || input.Quantity <= 0 {
		return nil, ErrCartItemInvalid
	}
	product := s.catalog.ProductByID(input.ProductID)
	if product == nil {
		return nil, ErrProductNotFound
	}

	state, err := s.loadState(input.SessionID)
	if err != nil {
		return nil, err
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	variant := input.Variant
	if variant != nil && variant.IsZero() {
		variant = nil
	}
	state.Add(models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     image,
		Quantity:  input.Quantity,
		Variant:   variant,
	})

	if err := s.repo.Save(input.SessionID, state.Items); err != nil {
		return nil, err
	}
	return viewOf(state), nil
}

// RemoveItem 删除行项。重复删除为空操作，不报错。
func (s *CartService) RemoveItem(sessionID string, productID uint) (*CartView, error) {
	state, err := s.loadState(sessionID)
	if err != nil {
		return nil, err
	}
	state.Remove(productID)
	if err := s.repo.Save(sessionID, state.Items); err != nil {
		return nil, err
	}
	return viewOf(state), nil
}

// UpdateQuantity 更新行项数量。quantity < 1 为空操作，行项保持不变。
func (s *CartService) UpdateQuantity(sessionID string, productID uint, quantity int) (*CartView, error) {
	state, err := s.loadState(sessionID)
	if err != nil {
		return nil, err
	}
	state.UpdateQuantity(productID, quantity)
	if err := s.repo.Save(sessionID, state.Items); err != nil {
		return nil, err
	}
	return viewOf(state), nil
}

// Clear 清空会话购物车
func (s *CartService) Clear(sessionID string) (*CartView, error) {
	state, err := s.loadState(sessionID)
	if err != nil {
		return nil, err
	}
	state.Clear()
	if err := s.repo.Save(sessionID, state.Items); err != nil {
		return nil, err
	}
	return viewOf(state), nil
}

func (s *CartService) loadState(sessionID string) (*CartState, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrCartSessionMissing
	}
	items, err := s.repo.Load(sessionID)
	if err != nil {
		return nil, err
	}
	return NewCartState(items), nil
}

func viewOf(state *CartState) *CartView {
	return &CartView{
		Items:    state.Items,
		Count:    state.Count(),
		Subtotal: state.Subtotal(),
		Open:     state.Open,
	}
}
