package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(e *model.Enrollment) error {
	return r.DB.Create(e).Error
}

func (r *EnrollmentRepository) FindByID(id uint) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.DB.Preload("Student").Preload("Course").First(&e, id).Error
	return &e, err
}

func (r *EnrollmentRepository) Exists(studentID, courseID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *EnrollmentRepository) UpdateProgress(id uint, progress float64) error {
	return r.DB.Model(&model.Enrollment{}).
		Where("id = ?", id).
		Update("progress", progress).
		Error
}

// List scopes enrollments by role: admin passes zero IDs, instructors scope
// by their courses, students by themselves.
func (r *EnrollmentRepository) List(studentID, instructorID uint, page, limit int) ([]model.Enrollment, int64, error) {
	var es []model.Enrollment
	var total int64

	query := r.DB.Model(&model.Enrollment{})
	if studentID > 0 {
		query = query.Where("student_id = ?", studentID)
	}
	if instructorID > 0 {
		query = query.Joins("JOIN courses ON courses.id = enrollments.course_id").
			Where("courses.instructor_id = ?", instructorID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Student").Preload("Course").
		Order("enrollments.created_at desc").
		Offset(offset).Limit(limit).
		Find(&es).Error
	return es, total, err
}

func (r *EnrollmentRepository) FindByStudent(studentID uint) ([]model.Enrollment, error) {
	var es []model.Enrollment
	err := r.DB.Preload("Course").Where("student_id = ?", studentID).Find(&es).Error
	return es, err
}

func (r *EnrollmentRepository) FindByCourse(courseID uint) ([]model.Enrollment, error) {
	var es []model.Enrollment
	err := r.DB.Preload("Student").Where("course_id = ?", courseID).Find(&es).Error
	return es, err
}

func (r *EnrollmentRepository) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Enrollment{}).Count(&total).Error
	return total, err
}
