package service

import (
	"fmt"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
)

// ReminderService emails enrolled students about assessments due within the
// next 24 hours. It runs on a ticker from the application loop.
type ReminderService struct {
	AssessmentRepo *repository.AssessmentRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Email          EmailService
}

func NewReminderService(
	assessmentRepo *repository.AssessmentRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	email EmailService,
) *ReminderService {
	return &ReminderService{
		AssessmentRepo: assessmentRepo,
		EnrollmentRepo: enrollmentRepo,
		Email:          email,
	}
}

// ReminderMessage builds the email for one student and assessment.
func ReminderMessage(studentName, studentEmail string, a *model.Assessment) *EmailMessage {
	courseName := ""
	if a.Course != nil {
		courseName = a.Course.Name
	}
	return &EmailMessage{
		ToName:  studentName,
		ToEmail: studentEmail,
		Subject: fmt.Sprintf("Reminder: %q is due soon", a.Title),
		Body: fmt.Sprintf(
			"Hi %s,\n\nThe assessment %q for course %q is due on %s. Make sure to submit before the deadline.\n",
			studentName, a.Title, courseName, a.DueDate.Format("Mon, 02 Jan 2006 15:04"),
		),
	}
}

// SendDueReminders finds assessments due between now and now+24h and emails
// every student enrolled on their courses. Returns the number of reminders
// dispatched.
func (s *ReminderService) SendDueReminders(now time.Time) (int, error) {
	assessments, err := s.AssessmentRepo.FindDueBetween(now, now.Add(24*time.Hour))
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range assessments {
		a := &assessments[i]
		enrollments, err := s.EnrollmentRepo.FindByCourse(a.CourseID)
		if err != nil {
			logger.Log.Error("reminder: listing enrollments failed",
				zap.Uint("course_id", a.CourseID), zap.Error(err))
			continue
		}

		messages := make([]*EmailMessage, 0, len(enrollments))
		for _, e := range enrollments {
			if e.Student == nil || e.Student.Email == "" {
				continue
			}
			messages = append(messages, ReminderMessage(e.Student.Name, e.Student.Email, a))
		}
		if len(messages) > 0 {
			s.Email.SendMessages(messages...)
			sent += len(messages)
		}
	}
	return sent, nil
}

// Run blocks, sending reminders on every tick until stop is closed.
func (s *ReminderService) Run(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n, err := s.SendDueReminders(time.Now()); err != nil {
				logger.Log.Error("reminder run failed", zap.Error(err))
			} else if n > 0 {
				logger.Log.Info("assessment reminders sent", zap.Int("count", n))
			}
		case <-stop:
			return
		}
	}
}
