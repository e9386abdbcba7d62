package service

import (
	"testing"

	"lms_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// stubNotificationStore keeps notifications in a map and records which ids
// were marked read.
type stubNotificationStore struct {
	byID   map[uint]*model.Notification
	marked []uint
}

func (s *stubNotificationStore) Create(n *model.Notification) error {
	s.byID[n.ID] = n
	return nil
}

func (s *stubNotificationStore) FindByID(id uint) (*model.Notification, error) {
	n, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return n, nil
}

func (s *stubNotificationStore) ListByUser(userID uint, page, limit int) ([]model.Notification, int64, error) {
	return nil, 0, nil
}

func (s *stubNotificationStore) MarkRead(id uint) error {
	s.marked = append(s.marked, id)
	return nil
}

func (s *stubNotificationStore) UnreadCount(userID uint) (int64, error) {
	return 0, nil
}

func TestMarkReadOwnership(t *testing.T) {
	store := &stubNotificationStore{byID: map[uint]*model.Notification{
		1: {BaseModel: model.BaseModel{ID: 1}, UserID: 7, Message: "graded"},
		2: {BaseModel: model.BaseModel{ID: 2}, UserID: 8, Message: "sponsored"},
	}}
	svc := NewNotificationService(store)

	// own notification gets marked
	err := svc.MarkRead(7, 1)
	assert.NoError(t, err)
	assert.Equal(t, []uint{1}, store.marked)

	// another user's notification looks nonexistent and stays untouched
	err = svc.MarkRead(7, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Equal(t, []uint{1}, store.marked)

	// unknown id
	err = svc.MarkRead(7, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProgressUpdateMessage(t *testing.T) {
	msg := ProgressUpdateMessage("Amina", "Go Basics", 40)
	assert.Contains(t, msg, "Amina")
	assert.Contains(t, msg, "Go Basics")
	assert.Contains(t, msg, "40%")

	completed := ProgressUpdateMessage("Amina", "Go Basics", 100)
	assert.Contains(t, completed, "completed the course")
}

func TestSubmissionGradedMessage(t *testing.T) {
	msg := SubmissionGradedMessage("Midterm", 87.5)
	assert.Contains(t, msg, "Midterm")
	assert.Contains(t, msg, "87.5/100")
}

func TestSponsorshipCreatedMessage(t *testing.T) {
	withCourse := SponsorshipCreatedMessage("Acme Corp", "Go Basics", "150.00")
	assert.Contains(t, withCourse, "Acme Corp")
	assert.Contains(t, withCourse, "Go Basics")
	assert.Contains(t, withCourse, "150.00")

	general := SponsorshipCreatedMessage("Acme Corp", "", "150.00")
	assert.Contains(t, general, "sponsored your studies")
}
