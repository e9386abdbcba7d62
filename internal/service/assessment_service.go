package service

import (
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type AssessmentService struct {
	AssessmentRepo *repository.AssessmentRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewAssessmentService(
	assessmentRepo *repository.AssessmentRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
) *AssessmentService {
	return &AssessmentService{
		AssessmentRepo: assessmentRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

type AssessmentQuestionRequest struct {
	Prompt   string `json:"prompt" binding:"required"`
	Expected string `json:"expected"`
	Points   int    `json:"points" binding:"min=0"`
	Order    int    `json:"order"`
}

type AssessmentRequest struct {
	CourseID    uint                        `json:"courseId" binding:"required"`
	Title       string                      `json:"title" binding:"required"`
	Description string                      `json:"description"`
	DueDate     time.Time                   `json:"dueDate" binding:"required"`
	MaxScore    int                         `json:"maxScore"`
	Questions   []AssessmentQuestionRequest `json:"questions"`
}

// requireCourseOwner allows only the course's instructor or an admin.
func (s *AssessmentService) requireCourseOwner(claims *util.Claims, courseID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}
	if claims.Role != model.Admin && course.InstructorID != claims.UserID {
		return nil, util.ErrNotCourseInstructor
	}
	return course, nil
}

func (s *AssessmentService) Create(claims *util.Claims, req AssessmentRequest) (*model.Assessment, error) {
	if _, err := s.requireCourseOwner(claims, req.CourseID); err != nil {
		return nil, err
	}

	maxScore := req.MaxScore
	if maxScore == 0 {
		maxScore = 100
	}

	a := &model.Assessment{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		MaxScore:    maxScore,
	}
	if err := s.AssessmentRepo.Create(a); err != nil {
		return nil, err
	}

	for i, qr := range req.Questions {
		q := &model.AssessmentQuestion{
			AssessmentID: a.ID,
			Prompt:       qr.Prompt,
			Expected:     qr.Expected,
			Points:       qr.Points,
			Order:        qr.Order,
		}
		if q.Order == 0 {
			q.Order = i + 1
		}
		if err := s.AssessmentRepo.CreateQuestion(q); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// canAccessAssessment applies the same visibility rule as List: instructors
// see their own courses' assessments, students their enrolled courses', admin
// everything.
func canAccessAssessment(claims *util.Claims, a *model.Assessment, enrolled bool) bool {
	switch claims.Role {
	case model.Admin:
		return true
	case model.Instructor:
		return a.Course != nil && a.Course.InstructorID == claims.UserID
	case model.Student:
		return enrolled
	default:
		return false
	}
}

// Get hides assessments outside the caller's scope behind a not-found, so an
// unenrolled student cannot probe question prompts of paid courses.
func (s *AssessmentService) Get(claims *util.Claims, id uint) (*model.Assessment, []model.AssessmentQuestion, error) {
	a, err := s.AssessmentRepo.FindByID(id)
	if err != nil {
		return nil, nil, err
	}

	enrolled := false
	if claims.Role == model.Student {
		enrolled, err = s.EnrollmentRepo.Exists(claims.UserID, a.CourseID)
		if err != nil {
			return nil, nil, err
		}
	}
	if !canAccessAssessment(claims, a, enrolled) {
		return nil, nil, gorm.ErrRecordNotFound
	}

	qs, err := s.AssessmentRepo.ListQuestions(id)
	if err != nil {
		return nil, nil, err
	}
	return a, qs, nil
}

func (s *AssessmentService) Update(claims *util.Claims, id uint, req AssessmentRequest) (*model.Assessment, error) {
	a, err := s.AssessmentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireCourseOwner(claims, a.CourseID); err != nil {
		return nil, err
	}

	a.Title = req.Title
	a.Description = req.Description
	a.DueDate = req.DueDate
	if req.MaxScore > 0 {
		a.MaxScore = req.MaxScore
	}
	if err := s.AssessmentRepo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssessmentService) Delete(claims *util.Claims, id uint) error {
	a, err := s.AssessmentRepo.FindByID(id)
	if err != nil {
		return err
	}
	if _, err := s.requireCourseOwner(claims, a.CourseID); err != nil {
		return err
	}
	return s.AssessmentRepo.Delete(id)
}

// List scopes by role: instructors see their courses', students see enrolled
// courses', admin all.
func (s *AssessmentService) List(claims *util.Claims, courseID uint, page, limit int) ([]model.Assessment, int64, error) {
	instructorID, studentID := uint(0), uint(0)
	switch claims.Role {
	case model.Instructor:
		instructorID = claims.UserID
	case model.Student:
		studentID = claims.UserID
	case model.Admin:
	default:
		return nil, 0, util.ErrPermissionDenied
	}
	return s.AssessmentRepo.List(instructorID, studentID, courseID, page, limit)
}

func (s *AssessmentService) AddQuestion(claims *util.Claims, assessmentID uint, req AssessmentQuestionRequest) (*model.AssessmentQuestion, error) {
	a, err := s.AssessmentRepo.FindByID(assessmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireCourseOwner(claims, a.CourseID); err != nil {
		return nil, err
	}

	q := &model.AssessmentQuestion{
		AssessmentID: assessmentID,
		Prompt:       req.Prompt,
		Expected:     req.Expected,
		Points:       req.Points,
		Order:        req.Order,
	}
	if err := s.AssessmentRepo.CreateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *AssessmentService) UpdateQuestion(claims *util.Claims, questionID uint, req AssessmentQuestionRequest) (*model.AssessmentQuestion, error) {
	q, err := s.AssessmentRepo.FindQuestionByID(questionID)
	if err != nil {
		return nil, err
	}
	a, err := s.AssessmentRepo.FindByID(q.AssessmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireCourseOwner(claims, a.CourseID); err != nil {
		return nil, err
	}

	q.Prompt = req.Prompt
	q.Expected = req.Expected
	q.Points = req.Points
	if req.Order != 0 {
		q.Order = req.Order
	}
	if err := s.AssessmentRepo.UpdateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *AssessmentService) DeleteQuestion(claims *util.Claims, questionID uint) error {
	q, err := s.AssessmentRepo.FindQuestionByID(questionID)
	if err != nil {
		return err
	}
	a, err := s.AssessmentRepo.FindByID(q.AssessmentID)
	if err != nil {
		return err
	}
	if _, err := s.requireCourseOwner(claims, a.CourseID); err != nil {
		return err
	}
	return s.AssessmentRepo.DeleteQuestion(questionID)
}
