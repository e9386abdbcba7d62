package repository

import (
	"lms_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(a *model.Assessment) error {
	return r.DB.Create(a).Error
}

func (r *AssessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.Preload("Course").First(&a, id).Error
	return &a, err
}

func (r *AssessmentRepository) Update(a *model.Assessment) error {
	return r.DB.Save(a).Error
}

func (r *AssessmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Assessment{}, id).Error
}

// List scopes assessments by role: instructors by their courses, students by
// enrolled courses, admin unscoped.
func (r *AssessmentRepository) List(instructorID, studentID, courseID uint, page, limit int) ([]model.Assessment, int64, error) {
	var as []model.Assessment
	var total int64

	query := r.DB.Model(&model.Assessment{})
	if courseID > 0 {
		query = query.Where("assessments.course_id = ?", courseID)
	}
	if instructorID > 0 {
		query = query.Joins("JOIN courses ON courses.id = assessments.course_id").
			Where("courses.instructor_id = ?", instructorID)
	}
	if studentID > 0 {
		query = query.Joins("JOIN enrollments ON enrollments.course_id = assessments.course_id").
			Where("enrollments.student_id = ?", studentID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Course").
		Order("assessments.due_date asc, assessments.created_at desc").
		Offset(offset).Limit(limit).
		Find(&as).Error
	return as, total, err
}

// FindDueBetween returns assessments whose due date falls in [from, to).
func (r *AssessmentRepository) FindDueBetween(from, to time.Time) ([]model.Assessment, error) {
	var as []model.Assessment
	err := r.DB.Preload("Course").
		Where("due_date >= ? AND due_date < ?", from, to).
		Find(&as).Error
	return as, err
}

func (r *AssessmentRepository) CreateQuestion(q *model.AssessmentQuestion) error {
	return r.DB.Create(q).Error
}

func (r *AssessmentRepository) FindQuestionByID(id uint) (*model.AssessmentQuestion, error) {
	var q model.AssessmentQuestion
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *AssessmentRepository) ListQuestions(assessmentID uint) ([]model.AssessmentQuestion, error) {
	var qs []model.AssessmentQuestion
	err := r.DB.Where("assessment_id = ?", assessmentID).
		Order("`order` asc, created_at asc").
		Find(&qs).Error
	return qs, err
}

func (r *AssessmentRepository) UpdateQuestion(q *model.AssessmentQuestion) error {
	return r.DB.Save(q).Error
}

func (r *AssessmentRepository) DeleteQuestion(id uint) error {
	return r.DB.Delete(&model.AssessmentQuestion{}, id).Error
}
