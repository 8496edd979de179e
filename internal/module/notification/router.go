package notification

import (
	"community-funding-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (n *ModuleNotification) InitRouter(r *gin.RouterGroup) {
	notificationGroup := r.Group("/notification")

	notificationGroup.Use(middleware.Auth())
	{
		// 获取当前用户的通知列表
		notificationGroup.GET("/list", ListNotifications)

		// 标记通知为已读
		notificationGroup.PATCH("/read/:id", MarkRead)
	}
}
