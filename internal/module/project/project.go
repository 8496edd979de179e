package project

import (
	"fmt"
	"time"

	"community-funding-system/internal/global/context"
	"community-funding-system/internal/global/database"
	"community-funding-system/internal/global/response"
	"community-funding-system/internal/model"
	"community-funding-system/internal/module/investment"
	"community-funding-system/internal/module/notification"
	"community-funding-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SubmitProjectReq 提交项目请求体
type SubmitProjectReq struct {
	Title           string  `json:"title" binding:"required"`                    // 项目标题
	Description     string  `json:"description" binding:"required"`              // 项目描述
	Category        string  `json:"category" binding:"required"`                 // 项目类别
	RequestedAmount float64 `json:"requested_amount" binding:"required,gt=0"`    // 筹款目标金额
	Timeline        string  `json:"timeline" binding:"required"`                 // 项目周期描述
	Priority        string  `json:"priority" binding:"omitempty,oneof=low medium high"` // 优先级，默认 medium
}

// Submit 处理项目提交请求，新项目以 pending 状态进入审核队列
func Submit(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req SubmitProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定项目提交请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	priority := model.Priority(req.Priority)
	if req.Priority == "" {
		priority = model.PriorityMedium
	}

	project := &model.Project{
		UserID:          payload.UserID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		RequestedAmount: tools.Round2(req.RequestedAmount),
		Timeline:        req.Timeline,
		Status:          model.StatusPending,
		Priority:        priority,
		SubmittedAt:     time.Now(),
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}
		return notification.Create(tx, payload.UserID, "项目已提交",
			fmt.Sprintf("您的项目《%s》已提交，等待审核", project.Title))
	})
	if err != nil {
		log.Error("创建项目失败", "error", err, "title", req.Title, "user_id", payload.UserID)
		response.Fail(c, err)
		return
	}

	log.Info("项目提交成功",
		"id", project.ID,
		"title", project.Title,
		"user_id", payload.UserID,
	)

	response.Success(c, project)
}

// Mine 查询当前用户提交的项目列表
func Mine(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var projects []model.Project
	if err := database.DB.
		Where("user_id = ?", payload.UserID).
		Order("submitted_at DESC").
		Find(&projects).Error; err != nil {
		log.Error("查询项目列表失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, projects)
}

// Pending 查询全部待审核项目（审核队列，所有审核人共享）
func Pending(c *gin.Context) {
	projects, err := listByStatus(model.StatusPending)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, projects)
}

// ProjectWithFunding 项目连同筹款进度
type ProjectWithFunding struct {
	model.Project
	Funding investment.FundingStatus `json:"funding"`
}

// Approved 查询全部已通过审核的项目，附带各自的筹款进度
func Approved(c *gin.Context) {
	projects, err := listByStatus(model.StatusApproved)
	if err != nil {
		response.Fail(c, err)
		return
	}

	result := make([]ProjectWithFunding, 0, len(projects))
	for _, p := range projects {
		status, err := investment.GetFundingStatus(database.DB, p.ID)
		if err != nil {
			response.Fail(c, err)
			return
		}
		result = append(result, ProjectWithFunding{Project: p, Funding: *status})
	}

	response.Success(c, result)
}

// GetByID 查询单个项目
func GetByID(c *gin.Context) {
	id := c.Param("id")

	var project model.Project
	if err := database.DB.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("项目不存在"))
			return
		}
		log.Error("查询项目失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, project)
}

func listByStatus(status model.ProjectStatus) ([]model.Project, error) {
	var projects []model.Project
	if err := database.DB.
		Where("status = ?", status).
		Order("submitted_at DESC").
		Find(&projects).Error; err != nil {
		log.Error("按状态查询项目失败", "error", err, "status", status)
		return nil, response.ErrDatabase.WithOrigin(err)
	}
	return projects, nil
}
