package notification

import (
	"community-funding-system/config"
	"community-funding-system/internal/global/httpclient"
	"community-funding-system/internal/model"

	"gorm.io/gorm"
)

// Create 在给定连接上创建一条通知
// 传入事务连接时与主操作同事务提交，保证通知不丢失
func Create(tx *gorm.DB, userID, title, message string) error {
	return tx.Create(&model.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	}).Error
}

// WebhookEvent 推送到外部回调地址的事件体
type WebhookEvent struct {
	Event     string `json:"event"`
	ProjectID uint   `json:"project_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
}

// PushWebhook 异步推送事件到配置的回调地址，失败只记日志
// 必须在事务提交之后调用，避免把外部副作用卷进事务
func PushWebhook(event WebhookEvent) {
	url := config.Get().Webhook.URL
	if url == "" || httpclient.Client == nil {
		return
	}
	go func() {
		resp, err := httpclient.Client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(event).
			Post(url)
		if err != nil {
			log.Warn("推送回调失败", "error", err, "event", event.Event, "project_id", event.ProjectID)
			return
		}
		if resp.IsError() {
			log.Warn("回调返回错误状态", "status", resp.StatusCode(), "event", event.Event, "project_id", event.ProjectID)
		}
	}()
}
