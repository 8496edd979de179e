package user

import (
	"community-funding-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	userGroup := r.Group("/user")

	// 注册与登录不需要令牌
	userGroup.POST("/register", Register)
	userGroup.POST("/login", Login)

	authGroup := r.Group("/user")
	authGroup.Use(middleware.Auth())
	{
		// 查询当前用户信息
		authGroup.GET("/profile", Profile)

		// 更新当前用户资料
		authGroup.PUT("/profile", UpdateProfile)
	}
}
