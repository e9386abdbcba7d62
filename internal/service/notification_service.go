package service

import (
	"fmt"
	"lms_backend/internal/model"
	"lms_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NotificationStore is the persistence surface the service needs.
// repository.NotificationRepository satisfies it.
type NotificationStore interface {
	Create(n *model.Notification) error
	FindByID(id uint) (*model.Notification, error)
	ListByUser(userID uint, page, limit int) ([]model.Notification, int64, error)
	MarkRead(id uint) error
	UnreadCount(userID uint) (int64, error)
}

type NotificationService struct {
	NotificationRepo NotificationStore
}

func NewNotificationService(repo NotificationStore) *NotificationService {
	return &NotificationService{NotificationRepo: repo}
}

func (s *NotificationService) List(userID uint, page, limit int) ([]model.Notification, int64, error) {
	return s.NotificationRepo.ListByUser(userID, page, limit)
}

// MarkRead marks one of the user's notifications read. Another user's
// notification is treated as nonexistent.
func (s *NotificationService) MarkRead(userID, notificationID uint) error {
	n, err := s.NotificationRepo.FindByID(notificationID)
	if err != nil {
		return err
	}
	if n.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	return s.NotificationRepo.MarkRead(notificationID)
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.NotificationRepo.UnreadCount(userID)
}

// Notify writes a notification row. Failures are logged, not propagated:
// notification delivery must never fail the triggering operation.
func (s *NotificationService) Notify(userID uint, message string) {
	n := &model.Notification{
		UserID:  userID,
		Message: message,
	}
	if err := s.NotificationRepo.Create(n); err != nil && logger.Log != nil {
		logger.Log.Error("failed to create notification", zap.Uint("user_id", userID), zap.Error(err))
	}
}

// Message builders keep wording consistent across the triggering services.

func ProgressUpdateMessage(studentName, courseName string, progress float64) string {
	if progress >= 100 {
		return fmt.Sprintf("%s completed the course %q.", studentName, courseName)
	}
	return fmt.Sprintf("%s updated progress on %q to %.0f%%.", studentName, courseName, progress)
}

func SubmissionGradedMessage(assessmentTitle string, grade float64) string {
	return fmt.Sprintf("Your submission for %q was graded: %.1f/100.", assessmentTitle, grade)
}

func SponsorshipCreatedMessage(sponsorName, courseName, amount string) string {
	if courseName != "" {
		return fmt.Sprintf("%s sponsored you for the course %q (%s).", sponsorName, courseName, amount)
	}
	return fmt.Sprintf("%s sponsored your studies (%s).", sponsorName, amount)
}
