package middleware

import (
	"strings"

	"community-funding-system/internal/global/jwt"
	"community-funding-system/internal/global/response"
	"community-funding-system/internal/model"

	"github.com/gin-gonic/gin"
)

// Auth 校验访问令牌并限定角色
// 不传 roles 表示任意已登录用户均可访问
func Auth(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		payload, valid := jwt.ParseToken(token)
		if !valid {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		if len(roles) > 0 && !roleAllowed(payload.Role, roles) {
			response.Fail(c, response.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Set("payload", payload)
		c.Next()
	}
}

func roleAllowed(role model.Role, allowed []model.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
