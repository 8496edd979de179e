package model

// Notification 站内通知，只在标记已读时更新
type Notification struct {
	Model
	UserID  string `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Title   string `gorm:"type:varchar(255);not null" json:"title"`
	Message string `gorm:"type:text;not null" json:"message"`
	Read    bool   `gorm:"default:false;not null" json:"read"`
}
