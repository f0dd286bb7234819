package public

import (
	"github.com/stylehaven/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// getSessionID 读取中间件派发的购物车会话标识。
func getSessionID(c *gin.Context) (string, bool) {
	value, exists := c.Get("cart_session_id")
	if !exists {
		respondError(c, response.CodeBadRequest, "error.cart_session_missing", nil)
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		respondError(c, response.CodeBadRequest, "error.cart_session_missing", nil)
		return "", false
	}
	return id, true
}
