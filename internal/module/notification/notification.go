package notification

import (
	"community-funding-system/internal/global/context"
	"community-funding-system/internal/global/database"
	"community-funding-system/internal/global/response"
	"community-funding-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListNotifications 获取当前用户的通知列表，按创建时间倒序
func ListNotifications(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var notifications []model.Notification
	if err := database.DB.
		Where("user_id = ?", payload.UserID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		log.Error("查询通知列表失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, notifications)
}

// MarkRead 将一条通知标记为已读，只能操作属于自己的通知
func MarkRead(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("通知ID不能为空"))
		return
	}

	var notification model.Notification
	if err := database.DB.First(&notification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("通知不存在"))
			return
		}
		log.Error("查询通知失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if notification.UserID != payload.UserID {
		response.Fail(c, response.ErrUnauthorized.WithTips("无权限操作该通知"))
		return
	}

	if err := database.DB.Model(&notification).Update("read", true).Error; err != nil {
		log.Error("标记通知已读失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c)
}
