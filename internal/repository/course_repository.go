package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Instructor").First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Course{}, id).Error
}

// List returns courses, optionally scoped to one instructor and filtered by a
// search term over name, difficulty and instructor name.
func (r *CourseRepository) List(instructorID uint, search string, page, limit int) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64

	query := r.DB.Model(&model.Course{}).
		Joins("LEFT JOIN users ON users.id = courses.instructor_id")

	if instructorID > 0 {
		query = query.Where("courses.instructor_id = ?", instructorID)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("courses.name LIKE ? OR courses.difficulty LIKE ? OR users.name LIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Instructor").
		Order("courses.created_at desc").
		Offset(offset).Limit(limit).
		Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepository) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Course{}).Count(&total).Error
	return total, err
}
