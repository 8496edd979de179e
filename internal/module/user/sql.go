package user

import (
	"community-funding-system/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertUser 按主键写入用户，已存在时更新资料字段
// 角色与密码不在更新列内，避免资料更新越权改角色
func UpsertUser(db *gorm.DB, user *model.User) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "first_name", "last_name", "updated_at"}),
	}).Create(user).Error
}
