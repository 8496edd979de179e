package investment

import (
	"community-funding-system/internal/global/context"
	"community-funding-system/internal/global/database"
	"community-funding-system/internal/global/response"
	"community-funding-system/internal/model"

	"github.com/gin-gonic/gin"
)

// InvestReq 投资请求体
type InvestReq struct {
	ProjectID uint    `json:"project_id" binding:"required"`  // 项目ID
	Amount    float64 `json:"amount" binding:"required,gt=0"` // 投资金额，保留两位小数
}

// Invest 处理投资请求
func Invest(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req InvestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定投资请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	inv, err := RecordInvestment(database.DB, payload.UserID, req.ProjectID, req.Amount)
	if err != nil {
		log.Warn("投资记录失败", "error", err, "project_id", req.ProjectID, "investor_id", payload.UserID)
		response.Fail(c, err)
		return
	}

	log.Info("投资记录成功",
		"project_id", req.ProjectID,
		"investor_id", payload.UserID,
		"amount", inv.Amount,
	)

	response.Success(c, inv)
}

// FundingStatusHandler 查询项目的筹款进度
func FundingStatusHandler(c *gin.Context) {
	id, ok := projectIDParam(c)
	if !ok {
		return
	}

	status, err := GetFundingStatus(database.DB, id)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, status)
}

// InvestmentWithProject 投资记录连同项目标题与当前状态
type InvestmentWithProject struct {
	model.Investment
	ProjectTitle  string              `json:"project_title"`
	ProjectStatus model.ProjectStatus `json:"project_status"`
}

// MyInvestments 查询当前用户的投资记录，带项目标题与状态
func MyInvestments(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var investments []InvestmentWithProject
	if err := database.DB.Model(&model.Investment{}).
		Select("investment.*, project.title AS project_title, project.status AS project_status").
		Joins("JOIN project ON project.id = investment.project_id").
		Where("investment.investor_id = ?", payload.UserID).
		Order("investment.invested_at DESC").
		Scan(&investments).Error; err != nil {
		log.Error("查询投资记录失败", "error", err, "investor_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, investments)
}
