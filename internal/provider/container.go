package provider

import (
	"github.com/stylehaven/storefront/internal/cache"
	"github.com/stylehaven/storefront/internal/catalog"
	"github.com/stylehaven/storefront/internal/config"
	"github.com/stylehaven/storefront/internal/logger"
	"github.com/stylehaven/storefront/internal/models"
	"github.com/stylehaven/storefront/internal/queue"
	"github.com/stylehaven/storefront/internal/repository"
	"github.com/stylehaven/storefront/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	CartSessionRepo repository.CartSessionRepository

	// 静态商品目录
	Catalog *catalog.Catalog

	// Services
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	PromoService    *service.PromoService
	CheckoutService *service.CheckoutService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		Catalog:     catalog.Default(),
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CartSessionRepo = repository.NewCartSessionRepository(db)
}

func (c *Container) initServices() {
	c.CatalogService = service.NewCatalogService(c.Catalog)
	c.CartService = service.NewCartService(c.CartSessionRepo, c.Catalog)
	c.PromoService = service.NewPromoService(c.Config.Promo)
	c.CheckoutService = service.NewCheckoutService(c.CartService, c.PromoService, c.QueueClient, c.Config.Checkout)
}
