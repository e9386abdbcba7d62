package model

// swagger:model Notification
type Notification struct {
	BaseModel
	UserID  uint   `gorm:"index;type:bigint unsigned" json:"userId"`
	Message string `gorm:"size:500;not null" json:"message"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`
}

func (Notification) TableName() string {
	return "notifications"
}
