package review

import (
	"fmt"
	"time"

	"community-funding-system/internal/global/response"
	"community-funding-system/internal/model"
	"community-funding-system/internal/module/notification"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SubmitReview 执行审核状态机的唯一合法迁移：pending -> approved | rejected
// 审核记录、项目状态更新和站内通知在同一个事务中提交
func SubmitReview(db *gorm.DB, reviewerID string, projectID uint, decision model.ReviewDecision, comments string) (*model.Review, error) {
	if !decision.Valid() {
		return nil, response.ErrInvalidRequest.WithTips("审核结论必须是 approved 或 rejected")
	}

	now := time.Now()
	rev := &model.Review{
		ProjectID:  projectID,
		ReviewerID: reviewerID,
		Decision:   decision,
		Comments:   comments,
		ReviewedAt: now,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var project model.Project
		if err := tx.First(&project, "id = ?", projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrNotFound.WithTips("项目不存在")
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		// 只有待审核的项目允许审核，重复审核视为状态冲突
		if project.Status != model.StatusPending {
			return response.ErrConflict.WithTips(fmt.Sprintf("项目当前状态为 %s，不能审核", project.Status))
		}

		if err := tx.Create(rev).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}

		if err := tx.Model(&model.Project{}).
			Where("id = ?", projectID).
			Updates(map[string]any{
				"status":      model.ProjectStatus(decision),
				"reviewed_at": now,
			}).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}

		message := fmt.Sprintf("您的项目《%s》审核结果为 %s", project.Title, decision)
		if comments != "" {
			message += "，审核意见：" + comments
		}
		if err := notification.Create(tx, project.UserID, "项目审核结果", message); err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return rev, nil
}

// ListReviews 查询某项目的全部审核记录
func ListReviews(db *gorm.DB, projectID uint) ([]model.Review, error) {
	var reviews []model.Review
	if err := db.Where("project_id = ?", projectID).
		Order("reviewed_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, response.ErrDatabase.WithOrigin(err)
	}
	return reviews, nil
}
