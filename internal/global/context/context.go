package context

import (
	"community-funding-system/internal/global/jwt"

	"github.com/gin-gonic/gin"
)

// GetUserPayload 从 gin.Context 中取出认证中间件写入的用户身份
func GetUserPayload(c *gin.Context) (userPayload *jwt.Claims, exist bool) {
	payload, _ := c.Get("payload")
	userPayload, exist = payload.(*jwt.Claims)
	return
}
