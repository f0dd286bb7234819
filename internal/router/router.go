package router

import (
	"fmt"
	"strings"

	"github.com/stylehaven/storefront/internal/cache"
	"github.com/stylehaven/storefront/internal/config"
	publichandlers "github.com/stylehaven/storefront/internal/http/handlers/public"
	"github.com/stylehaven/storefront/internal/http/response"
	"github.com/stylehaven/storefront/internal/logger"
	"github.com/stylehaven/storefront/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sth"
	}
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxAttempts,
		Message:       "error.checkout_too_many",
	}
	promoRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:promo", redisPrefix),
		WindowSeconds: cfg.Security.PromoRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.PromoRateLimit.MaxAttempts,
		Message:       "error.promo_too_many",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开目录接口
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:id", publicHandler.GetProductByID)
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/categories/:slug", publicHandler.GetCategoryBySlug)
			public.GET("/collections", publicHandler.GetCollections)
		}

		// 会话购物车接口
		session := apiV1.Group("")
		session.Use(CartSessionMiddleware(cfg.Cart))
		{
			session.GET("/cart", publicHandler.GetCart)
			session.POST("/cart/items", publicHandler.AddCartItem)
			session.PUT("/cart/items/:product_id", publicHandler.UpdateCartItem)
			session.DELETE("/cart/items/:product_id", publicHandler.DeleteCartItem)
			session.DELETE("/cart", publicHandler.ClearCart)
			session.POST("/cart/promo", RateLimitMiddleware(redisClient, promoRule, KeyBySession), publicHandler.ApplyPromo)
			session.POST("/checkout", RateLimitMiddleware(redisClient, checkoutRule, KeyBySession), publicHandler.SubmitCheckout)
		}
	}

	// 未匹配路由统一返回 JSON 404，附带可恢复入口
	r.NoRoute(func(ctx *gin.Context) {
		response.ErrorWithData(ctx, response.CodeNotFound, "error.route_not_found", gin.H{
			"hint": "/api/v1/public/products",
		})
	})

	return r
}
