package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(s *model.Submission) error {
	return r.DB.Create(s).Error
}

func (r *SubmissionRepository) FindByID(id uint) (*model.Submission, error) {
	var s model.Submission
	err := r.DB.Preload("Student").Preload("Assessment").Preload("Assessment.Course").First(&s, id).Error
	return &s, err
}

func (r *SubmissionRepository) Update(s *model.Submission) error {
	return r.DB.Save(s).Error
}

func (r *SubmissionRepository) Exists(assessmentID, studentID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Submission{}).
		Where("assessment_id = ? AND student_id = ?", assessmentID, studentID).
		Count(&count).Error
	return count > 0, err
}

// List scopes submissions by role the same way assessments are scoped.
func (r *SubmissionRepository) List(instructorID, studentID, assessmentID uint, status string, page, limit int) ([]model.Submission, int64, error) {
	var ss []model.Submission
	var total int64

	query := r.DB.Model(&model.Submission{})
	if assessmentID > 0 {
		query = query.Where("submissions.assessment_id = ?", assessmentID)
	}
	if studentID > 0 {
		query = query.Where("submissions.student_id = ?", studentID)
	}
	if instructorID > 0 {
		query = query.Joins("JOIN assessments ON assessments.id = submissions.assessment_id").
			Joins("JOIN courses ON courses.id = assessments.course_id").
			Where("courses.instructor_id = ?", instructorID)
	}
	if status != "" {
		query = query.Where("submissions.status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Student").Preload("Assessment").
		Order("submissions.created_at desc").
		Offset(offset).Limit(limit).
		Find(&ss).Error
	return ss, total, err
}
