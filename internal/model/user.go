package model

import "time"

// Role 用户角色：申请人提交项目、审核人审批、投资人出资
type Role string

const (
	RoleApplicant Role = "applicant"
	RoleReviewer  Role = "reviewer"
	RoleInvestor  Role = "investor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleApplicant, RoleReviewer, RoleInvestor:
		return true
	}
	return false
}

type User struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255)" json:"-"`
	FirstName string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100)" json:"last_name"`
	Role      Role      `gorm:"type:varchar(20);default:'applicant';not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
