package service

import (
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/shopspring/decimal"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
	AI         *AIService
}

func NewCourseService(courseRepo *repository.CourseRepository, ai *AIService) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		AI:         ai,
	}
}

type CourseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Difficulty  string  `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	IsPaid      bool    `json:"isPaid"`
	Price       float64 `json:"price" binding:"min=0"`
}

// Create stores a course owned by the calling instructor. An empty
// description is drafted by the AI service; a generation failure fails the
// create rather than storing an empty course.
func (s *CourseService) Create(instructorID uint, req CourseRequest) (*model.Course, error) {
	description := req.Description
	if description == "" {
		generated, err := s.AI.GenerateCourseDescription(req.Name, req.Difficulty)
		if err != nil {
			return nil, err
		}
		description = generated
	}

	course := &model.Course{
		Name:         req.Name,
		Description:  description,
		Difficulty:   model.CourseDifficulty(req.Difficulty),
		InstructorID: instructorID,
		IsPaid:       req.IsPaid,
		Price:        decimal.NewFromFloat(req.Price),
	}

	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Get(id uint) (*model.Course, error) {
	return s.CourseRepo.FindByID(id)
}

// List scopes by role: instructors see only their own courses, everyone else
// sees all.
func (s *CourseService) List(claims *util.Claims, search string, page, limit int) ([]model.Course, int64, error) {
	instructorID := uint(0)
	if claims.Role == model.Instructor {
		instructorID = claims.UserID
	}
	return s.CourseRepo.List(instructorID, search, page, limit)
}

func (s *CourseService) Update(claims *util.Claims, id uint, req CourseRequest) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if claims.Role != model.Admin && course.InstructorID != claims.UserID {
		return nil, util.ErrPermissionDenied
	}

	course.Name = req.Name
	course.Difficulty = model.CourseDifficulty(req.Difficulty)
	course.IsPaid = req.IsPaid
	course.Price = decimal.NewFromFloat(req.Price)
	if req.Description != "" {
		course.Description = req.Description
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(claims *util.Claims, id uint) error {
	if claims.Role != model.Admin {
		return util.ErrPermissionDenied
	}
	if _, err := s.CourseRepo.FindByID(id); err != nil {
		return err
	}
	return s.CourseRepo.Delete(id)
}
