package model

import "time"

// ReviewDecision 审核结论，只允许通过或拒绝
type ReviewDecision string

const (
	DecisionApproved ReviewDecision = "approved"
	DecisionRejected ReviewDecision = "rejected"
)

func (d ReviewDecision) Valid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// Review 审核记录，只增不改
type Review struct {
	Model
	ProjectID  uint           `gorm:"index;not null" json:"project_id"`
	ReviewerID string         `gorm:"type:varchar(36);index;not null" json:"reviewer_id"`
	Decision   ReviewDecision `gorm:"type:varchar(20);not null" json:"decision"`
	Comments   string         `gorm:"type:text" json:"comments"`
	ReviewedAt time.Time      `json:"reviewed_at"`
}
