package service

import (
	"fmt"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/shopspring/decimal"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
	SponsorRepo    *repository.SponsorRepository
	PaymentRepo    *repository.PaymentRepository
	UserRepo       *repository.UserRepository
	Notifications  *NotificationService
}

func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
	sponsorRepo *repository.SponsorRepository,
	paymentRepo *repository.PaymentRepository,
	userRepo *repository.UserRepository,
	notifications *NotificationService,
) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
		SponsorRepo:    sponsorRepo,
		PaymentRepo:    paymentRepo,
		UserRepo:       userRepo,
		Notifications:  notifications,
	}
}

// Enroll registers a student on a course. Paid courses require an existing
// sponsorship for the pair or a completed payment transaction.
func (s *EnrollmentService) Enroll(studentID, courseID uint) (*model.Enrollment, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}

	enrolled, err := s.EnrollmentRepo.Exists(studentID, courseID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return nil, util.ErrAlreadyEnrolled
	}

	if course.IsPaid || course.Price.IsPositive() {
		sponsored, err := s.SponsorRepo.SponsorshipExists(studentID, courseID)
		if err != nil {
			return nil, err
		}
		paid, err := s.PaymentRepo.HasCompletedPayment(studentID, courseID)
		if err != nil {
			return nil, err
		}
		if !sponsored && !paid {
			return nil, util.ErrPaymentRequired
		}
	}

	enrollment := &model.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// SimulatePayment enrolls directly on free courses; on paid courses it
// records a completed dev-mode payment and then enrolls. Development only.
func (s *EnrollmentService) SimulatePayment(studentID, courseID uint) (*model.Enrollment, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}

	enrolled, err := s.EnrollmentRepo.Exists(studentID, courseID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return nil, util.ErrAlreadyEnrolled
	}

	if course.IsPaid || course.Price.IsPositive() {
		tx := &model.PaymentTransaction{
			UserID:    studentID,
			CourseID:  courseID,
			Amount:    course.Price,
			Method:    "dev",
			Status:    model.PaymentCompleted,
			Reference: fmt.Sprintf("DEV-%d-%d-%s", studentID, courseID, model.GenerateUUID()[:8]),
		}
		if err := s.PaymentRepo.Create(tx); err != nil {
			return nil, err
		}
	}

	enrollment := &model.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// UpdateProgress bounds progress to 0..100 and notifies the course
// instructor. Only the owning student or an admin may update.
func (s *EnrollmentService) UpdateProgress(claims *util.Claims, enrollmentID uint, progress float64) (*model.Enrollment, error) {
	if progress < 0 || progress > 100 {
		return nil, util.ErrInvalidProgress
	}

	enrollment, err := s.EnrollmentRepo.FindByID(enrollmentID)
	if err != nil {
		return nil, err
	}

	if claims.Role != model.Admin && enrollment.StudentID != claims.UserID {
		return nil, util.ErrPermissionDenied
	}

	if err := s.EnrollmentRepo.UpdateProgress(enrollmentID, progress); err != nil {
		return nil, err
	}
	enrollment.Progress = progress

	if enrollment.Course != nil && enrollment.Student != nil {
		s.Notifications.Notify(
			enrollment.Course.InstructorID,
			ProgressUpdateMessage(enrollment.Student.Name, enrollment.Course.Name, progress),
		)
	}

	return enrollment, nil
}

// List scopes by role: admin all, instructors their courses', students their
// own.
func (s *EnrollmentService) List(claims *util.Claims, page, limit int) ([]model.Enrollment, int64, error) {
	studentID, instructorID := uint(0), uint(0)
	switch claims.Role {
	case model.Instructor:
		instructorID = claims.UserID
	case model.Student:
		studentID = claims.UserID
	case model.Admin:
	default:
		return nil, 0, util.ErrPermissionDenied
	}
	return s.EnrollmentRepo.List(studentID, instructorID, page, limit)
}

// AverageProgress computes the mean progress over enrollments.
func AverageProgress(enrollments []model.Enrollment) decimal.Decimal {
	if len(enrollments) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, e := range enrollments {
		total = total.Add(decimal.NewFromFloat(e.Progress))
	}
	return total.Div(decimal.NewFromInt(int64(len(enrollments))))
}
