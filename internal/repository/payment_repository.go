package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(t *model.PaymentTransaction) error {
	return r.DB.Create(t).Error
}

func (r *PaymentRepository) HasCompletedPayment(userID, courseID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.PaymentTransaction{}).
		Where("user_id = ? AND course_id = ? AND status = ?", userID, courseID, model.PaymentCompleted).
		Count(&count).Error
	return count > 0, err
}

func (r *PaymentRepository) ListByUser(userID uint) ([]model.PaymentTransaction, error) {
	var ts []model.PaymentTransaction
	err := r.DB.Preload("Course").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&ts).Error
	return ts, err
}
