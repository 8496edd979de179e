package stats

import (
	"time"

	"community-funding-system/internal/model"
	"community-funding-system/tools"

	"gorm.io/gorm"
)

// UserStatsResult 申请人看板：按状态统计自己的项目数
type UserStatsResult struct {
	TotalApplications    int64 `json:"total_applications"`
	PendingApplications  int64 `json:"pending_applications"`
	ApprovedApplications int64 `json:"approved_applications"`
	FundedApplications   int64 `json:"funded_applications"`
}

// ReviewerStatsResult 审核人看板
// PendingReviews 是全局待审数，所有审核人看到同一个队列
type ReviewerStatsResult struct {
	PendingReviews    int64   `json:"pending_reviews"`
	ApprovedThisMonth int64   `json:"approved_this_month"`
	RejectedThisMonth int64   `json:"rejected_this_month"`
	AvgReviewDays     float64 `json:"avg_review_days"`
}

// InvestorStatsResult 投资人看板
type InvestorStatsResult struct {
	TotalInvested      float64 `json:"total_invested"`
	ActiveProjects     int64   `json:"active_projects"`
	AvailableProjects  int64   `json:"available_projects"`
	CategoriesImpacted int64   `json:"categories_impacted"`
}

// UserStats 统计某用户的项目分布
// 用户不存在时各项计数自然为 0，看板查询不报错
func UserStats(db *gorm.DB, userID string) (*UserStatsResult, error) {
	result := &UserStatsResult{}

	counts := []struct {
		dest   *int64
		status model.ProjectStatus
	}{
		{&result.PendingApplications, model.StatusPending},
		{&result.ApprovedApplications, model.StatusApproved},
		{&result.FundedApplications, model.StatusFunded},
	}

	if err := db.Model(&model.Project{}).
		Where("user_id = ?", userID).
		Count(&result.TotalApplications).Error; err != nil {
		return nil, err
	}

	for _, c := range counts {
		if err := db.Model(&model.Project{}).
			Where("user_id = ? AND status = ?", userID, c.status).
			Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return result, nil
}

// ReviewerStats 统计某审核人的当月工作量
// 月份边界取 UTC 当月第一个时刻
func ReviewerStats(db *gorm.DB, reviewerID string, now time.Time) (*ReviewerStatsResult, error) {
	result := &ReviewerStatsResult{}

	pending, err := globalStatusCount(db, model.StatusPending)
	if err != nil {
		return nil, err
	}
	result.PendingReviews = pending

	monthStart := monthStartUTC(now)

	if err := db.Model(&model.Review{}).
		Where("reviewer_id = ? AND decision = ? AND reviewed_at >= ?",
			reviewerID, model.DecisionApproved, monthStart).
		Count(&result.ApprovedThisMonth).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&model.Review{}).
		Where("reviewer_id = ? AND decision = ? AND reviewed_at >= ?",
			reviewerID, model.DecisionRejected, monthStart).
		Count(&result.RejectedThisMonth).Error; err != nil {
		return nil, err
	}

	avg, err := avgReviewDays(db, reviewerID)
	if err != nil {
		return nil, err
	}
	result.AvgReviewDays = avg

	return result, nil
}

// InvestorStats 统计某投资人的投资分布
func InvestorStats(db *gorm.DB, investorID string) (*InvestorStatsResult, error) {
	result := &InvestorStatsResult{}

	var total float64
	if err := db.Model(&model.Investment{}).
		Where("investor_id = ?", investorID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return nil, err
	}
	result.TotalInvested = tools.Round2(total)

	if err := db.Model(&model.Investment{}).
		Joins("JOIN project ON project.id = investment.project_id").
		Where("investment.investor_id = ? AND project.status = ?", investorID, model.StatusFunded).
		Distinct("investment.project_id").
		Count(&result.ActiveProjects).Error; err != nil {
		return nil, err
	}

	available, err := globalStatusCount(db, model.StatusApproved)
	if err != nil {
		return nil, err
	}
	result.AvailableProjects = available

	if err := db.Model(&model.Investment{}).
		Joins("JOIN project ON project.id = investment.project_id").
		Where("investment.investor_id = ? AND project.status = ?", investorID, model.StatusFunded).
		Distinct("project.category").
		Count(&result.CategoriesImpacted).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// avgReviewDays 计算该审核人从项目提交到完成审核的平均天数
// 没有审核记录时返回 0
func avgReviewDays(db *gorm.DB, reviewerID string) (float64, error) {
	var rows []struct {
		ReviewedAt  time.Time
		SubmittedAt time.Time
	}
	if err := db.Model(&model.Review{}).
		Select("review.reviewed_at, project.submitted_at").
		Joins("JOIN project ON project.id = review.project_id").
		Where("review.reviewer_id = ?", reviewerID).
		Scan(&rows).Error; err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	var totalDays float64
	for _, row := range rows {
		totalDays += row.ReviewedAt.Sub(row.SubmittedAt).Hours() / 24
	}
	return tools.Round2(totalDays / float64(len(rows))), nil
}

// monthStartUTC 当月第一个时刻（UTC）
func monthStartUTC(now time.Time) time.Time {
	utc := now.UTC()
	return time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)
}
