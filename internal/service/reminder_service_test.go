package service

import (
	"lms_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReminderMessage(t *testing.T) {
	due := time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC)
	assessment := &model.Assessment{
		Title:   "Final Quiz",
		DueDate: due,
		Course:  &model.Course{Name: "Go Basics"},
	}

	msg := ReminderMessage("Amina", "amina@example.com", assessment)

	assert.Equal(t, "Amina", msg.ToName)
	assert.Equal(t, "amina@example.com", msg.ToEmail)
	assert.Contains(t, msg.Subject, "Final Quiz")
	assert.Contains(t, msg.Body, "Go Basics")
	assert.Contains(t, msg.Body, "01 Sep 2026")
}

func TestReminderMessageWithoutCourse(t *testing.T) {
	assessment := &model.Assessment{
		Title:   "Final Quiz",
		DueDate: time.Now().Add(12 * time.Hour),
	}

	msg := ReminderMessage("Amina", "amina@example.com", assessment)
	assert.Contains(t, msg.Subject, "due soon")
}
