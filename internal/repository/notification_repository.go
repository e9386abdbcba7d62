package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *model.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) FindByID(id uint) (*model.Notification, error) {
	var n model.Notification
	err := r.DB.First(&n, id).Error
	return &n, err
}

func (r *NotificationRepository) ListByUser(userID uint, page, limit int) ([]model.Notification, int64, error) {
	var ns []model.Notification
	var total int64
	query := r.DB.Model(&model.Notification{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&ns).Error
	return ns, total, err
}

func (r *NotificationRepository) MarkRead(id uint) error {
	return r.DB.Model(&model.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).
		Error
}

func (r *NotificationRepository) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
