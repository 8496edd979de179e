package model

import "time"

// ProjectStatus 项目生命周期状态
// pending -> approved | rejected（审核触发）
// approved -> funded（投资总额达到目标时由资金模块触发）
// funded -> completed（线下结算流程，核心不驱动）
type ProjectStatus string

const (
	StatusPending   ProjectStatus = "pending"
	StatusApproved  ProjectStatus = "approved"
	StatusRejected  ProjectStatus = "rejected"
	StatusFunded    ProjectStatus = "funded"
	StatusCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusFunded, StatusCompleted:
		return true
	}
	return false
}

// Priority 项目优先级
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Project struct {
	Model
	UserID          string        `gorm:"type:varchar(36);index;not null" json:"user_id"`                  // 申请人ID
	Title           string        `gorm:"type:varchar(255);not null" json:"title"`                         // 项目标题
	Description     string        `gorm:"type:text;not null" json:"description"`                           // 项目描述
	Category        string        `gorm:"type:varchar(100);not null" json:"category"`                      // 项目类别
	RequestedAmount float64       `gorm:"type:decimal(10,2);not null" json:"requested_amount"`             // 筹款目标金额
	Timeline        string        `gorm:"type:varchar(100)" json:"timeline"`                               // 项目周期描述
	Status          ProjectStatus `gorm:"type:varchar(20);default:'pending';not null;index" json:"status"` // 当前状态
	Priority        Priority      `gorm:"type:varchar(10);default:'medium';not null" json:"priority"`      // 优先级
	SubmittedAt     time.Time     `json:"submitted_at"`                                                    // 提交时间
	ReviewedAt      *time.Time    `json:"reviewed_at"`                                                     // 审核时间
	CompletedAt     *time.Time    `json:"completed_at"`                                                    // 完成时间
}
