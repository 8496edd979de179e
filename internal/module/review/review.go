package review

import (
	"community-funding-system/internal/global/context"
	"community-funding-system/internal/global/database"
	"community-funding-system/internal/global/response"
	"community-funding-system/internal/model"
	"community-funding-system/internal/module/notification"

	"github.com/gin-gonic/gin"
)

// SubmitReviewReq 提交审核请求体
type SubmitReviewReq struct {
	ProjectID uint   `json:"project_id" binding:"required"` // 项目ID
	Decision  string `json:"decision" binding:"required"`   // 审核结论 approved / rejected
	Comments  string `json:"comments"`                      // 审核意见，允许为空
}

// Submit 处理审核提交请求
func Submit(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req SubmitReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定审核请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	rev, err := SubmitReview(database.DB, payload.UserID, req.ProjectID, model.ReviewDecision(req.Decision), req.Comments)
	if err != nil {
		log.Warn("审核提交失败", "error", err, "project_id", req.ProjectID, "reviewer_id", payload.UserID)
		response.Fail(c, err)
		return
	}

	log.Info("审核提交成功",
		"project_id", req.ProjectID,
		"reviewer_id", payload.UserID,
		"decision", rev.Decision,
	)

	notification.PushWebhook(notification.WebhookEvent{
		Event:     "project." + string(rev.Decision),
		ProjectID: req.ProjectID,
		Title:     "项目审核结果",
		Message:   string(rev.Decision),
	})

	response.Success(c, rev)
}

// ListByProject 查询某项目的审核历史
func ListByProject(c *gin.Context) {
	id, ok := projectIDParam(c)
	if !ok {
		return
	}

	reviews, err := ListReviews(database.DB, id)
	if err != nil {
		log.Error("查询审核记录失败", "error", err, "project_id", id)
		response.Fail(c, err)
		return
	}

	response.Success(c, reviews)
}
