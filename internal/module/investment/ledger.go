package investment

import (
	"fmt"
	"time"

	"community-funding-system/internal/global/response"
	"community-funding-system/internal/model"
	"community-funding-system/internal/module/notification"
	"community-funding-system/tools"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FundingStatus 项目的筹款进度
type FundingStatus struct {
	Total float64 `json:"total"` // 已投资总额
	Goal  float64 `json:"goal"`  // 筹款目标
}

// GetFundingStatus 计算项目的投资总额与目标金额
// 没有任何投资记录时总额为 0，不视为错误
func GetFundingStatus(db *gorm.DB, projectID uint) (*FundingStatus, error) {
	var project model.Project
	if err := db.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrNotFound.WithTips("项目不存在")
		}
		return nil, response.ErrDatabase.WithOrigin(err)
	}

	total, err := sumInvestments(db, projectID)
	if err != nil {
		return nil, response.ErrDatabase.WithOrigin(err)
	}

	return &FundingStatus{
		Total: tools.Round2(total),
		Goal:  project.RequestedAmount,
	}, nil
}

// RecordInvestment 追加一条投资记录，并在总额达到目标时把项目状态推进为 funded
//
// 求和、比较、状态更新整个读改写序列跑在同一个事务里，并对项目行加排他锁，
// 保证并发投资同时越过阈值时状态迁移恰好发生一次。
// 已满额的项目允许继续投资（超额悄悄入账），但不会再触发状态迁移。
func RecordInvestment(db *gorm.DB, investorID string, projectID uint, amount float64) (*model.Investment, error) {
	amount = tools.Round2(amount)
	if amount <= 0 {
		return nil, response.ErrInvalidRequest.WithTips("投资金额必须大于0")
	}

	inv := &model.Investment{
		ProjectID:  projectID,
		InvestorID: investorID,
		Amount:     amount,
		InvestedAt: time.Now(),
	}

	var funded bool
	var projectTitle string

	err := db.Transaction(func(tx *gorm.DB) error {
		var project model.Project
		query := tx.Model(&model.Project{})
		// MySQL 下对项目行加排他锁；SQLite 写事务本身串行，无需也不支持该子句
		if tx.Dialector.Name() == "mysql" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := query.First(&project, "id = ?", projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrNotFound.WithTips("项目不存在")
			}
			return response.ErrDatabase.WithOrigin(err)
		}
		projectTitle = project.Title

		// 只接受已通过审核的项目；已满额的项目允许超额投资
		if project.Status != model.StatusApproved && project.Status != model.StatusFunded {
			return response.ErrConflict.WithTips(fmt.Sprintf("项目当前状态为 %s，不能投资", project.Status))
		}

		if err := tx.Create(inv).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}

		total, err := sumInvestments(tx, projectID)
		if err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}

		// 达标迁移只会从 approved 走一次，之后状态不再回退
		if project.Status == model.StatusApproved && total >= project.RequestedAmount {
			if err := tx.Model(&model.Project{}).
				Where("id = ?", projectID).
				Update("status", model.StatusFunded).Error; err != nil {
				return response.ErrDatabase.WithOrigin(err)
			}
			funded = true

			if err := notification.Create(tx, project.UserID, "项目筹款达标",
				fmt.Sprintf("您的项目《%s》已达成筹款目标", project.Title)); err != nil {
				return response.ErrDatabase.WithOrigin(err)
			}
		}

		if err := notification.Create(tx, project.UserID, "收到新投资",
			fmt.Sprintf("您的项目《%s》收到一笔 %.2f 的投资", project.Title, amount)); err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if funded {
		notification.PushWebhook(notification.WebhookEvent{
			Event:     "project.funded",
			ProjectID: projectID,
			Title:     "项目筹款达标",
			Message:   fmt.Sprintf("项目《%s》已达成筹款目标", projectTitle),
		})
	}

	return inv, nil
}

// sumInvestments 计算某项目的投资总额，无记录时返回 0
func sumInvestments(db *gorm.DB, projectID uint) (float64, error) {
	var total float64
	err := db.Model(&model.Investment{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
