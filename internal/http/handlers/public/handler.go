package public

import "github.com/stylehaven/storefront/internal/provider"

// Handler 前台/公开接口处理器入口
// 说明：店面 API 全部匿名访问，会话由 Cookie 中间件派发。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
