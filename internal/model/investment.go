package model

import "time"

// Investment 投资台账记录，只增不改，金额固定两位小数
type Investment struct {
	Model
	ProjectID  uint      `gorm:"index;not null" json:"project_id"`
	InvestorID string    `gorm:"type:varchar(36);index;not null" json:"investor_id"`
	Amount     float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	InvestedAt time.Time `json:"invested_at"`
}
