package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"path/filepath"
	"strings"
)

type SubmissionService struct {
	SubmissionRepo *repository.SubmissionRepository
	AssessmentRepo *repository.AssessmentRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Storage        *StorageService
	Notifications  *NotificationService
}

func NewSubmissionService(
	submissionRepo *repository.SubmissionRepository,
	assessmentRepo *repository.AssessmentRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	storage *StorageService,
	notifications *NotificationService,
) *SubmissionService {
	return &SubmissionService{
		SubmissionRepo: submissionRepo,
		AssessmentRepo: assessmentRepo,
		EnrollmentRepo: enrollmentRepo,
		Storage:        storage,
		Notifications:  notifications,
	}
}

type SubmissionRequest struct {
	AssessmentID uint                   `json:"assessmentId" binding:"required"`
	Answers      []model.QuestionAnswer `json:"answers" binding:"required"`
}

// ScoreAnswers grades objective answers against the questions' expected
// answers: a question scores its points on a trimmed, case-insensitive
// match. Questions without an expected answer are left for manual grading
// and contribute nothing here. The result is normalized to 0..100.
func ScoreAnswers(questions []model.AssessmentQuestion, answers []model.QuestionAnswer) float64 {
	byQuestion := make(map[uint]string, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a.Answer
	}

	totalPoints, earned := 0, 0
	for _, q := range questions {
		if q.Expected == "" {
			continue
		}
		points := q.Points
		if points == 0 {
			points = 1
		}
		totalPoints += points

		given, ok := byQuestion[q.ID]
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(q.Expected)) {
			earned += points
		}
	}

	if totalPoints == 0 {
		return 0
	}
	return float64(earned) / float64(totalPoints) * 100
}

// Submit records a student's answers, auto-scores them and stores the grade.
// A student submits each assessment once and must be enrolled on its course.
func (s *SubmissionService) Submit(studentID uint, req SubmissionRequest) (*model.Submission, error) {
	assessment, err := s.AssessmentRepo.FindByID(req.AssessmentID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.EnrollmentRepo.Exists(studentID, assessment.CourseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, util.ErrPermissionDenied
	}

	submitted, err := s.SubmissionRepo.Exists(req.AssessmentID, studentID)
	if err != nil {
		return nil, err
	}
	if submitted {
		return nil, util.ErrAlreadySubmitted
	}

	questions, err := s.AssessmentRepo.ListQuestions(req.AssessmentID)
	if err != nil {
		return nil, err
	}

	rawAnswers, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, err
	}

	submission := &model.Submission{
		AssessmentID: req.AssessmentID,
		StudentID:    studentID,
		Answers:      rawAnswers,
		Grade:        ScoreAnswers(questions, req.Answers),
		Status:       model.SubmissionPending,
	}
	if err := s.SubmissionRepo.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// AttachFile uploads a file for the student's own submission.
func (s *SubmissionService) AttachFile(ctx context.Context, studentID, submissionID uint, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	submission, err := s.SubmissionRepo.FindByID(submissionID)
	if err != nil {
		return "", err
	}
	if submission.StudentID != studentID {
		return "", util.ErrPermissionDenied
	}

	ext := filepath.Ext(filename)
	objectName := fmt.Sprintf("submissions/%d/%s%s", submissionID, model.GenerateUUID(), ext)
	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}

	submission.AttachmentURL = url
	if err := s.SubmissionRepo.Update(submission); err != nil {
		return "", err
	}
	return url, nil
}

type GradeRequest struct {
	Grade    float64 `json:"grade" binding:"min=0,max=100"`
	Feedback string  `json:"feedback"`
}

// Grade lets the course's instructor (or an admin) override the recorded
// grade. The student is notified.
func (s *SubmissionService) Grade(claims *util.Claims, submissionID uint, req GradeRequest) (*model.Submission, error) {
	if req.Grade < 0 || req.Grade > 100 {
		return nil, util.ErrInvalidGrade
	}

	submission, err := s.SubmissionRepo.FindByID(submissionID)
	if err != nil {
		return nil, err
	}

	if claims.Role != model.Admin {
		if submission.Assessment == nil || submission.Assessment.Course == nil ||
			submission.Assessment.Course.InstructorID != claims.UserID {
			return nil, util.ErrPermissionDenied
		}
	}

	graderID := claims.UserID
	submission.Grade = req.Grade
	submission.Feedback = req.Feedback
	submission.Status = model.SubmissionGraded
	submission.GradedByID = &graderID

	if err := s.SubmissionRepo.Update(submission); err != nil {
		return nil, err
	}

	if submission.Assessment != nil {
		s.Notifications.Notify(
			submission.StudentID,
			SubmissionGradedMessage(submission.Assessment.Title, req.Grade),
		)
	}

	return submission, nil
}

func (s *SubmissionService) Get(claims *util.Claims, id uint) (*model.Submission, error) {
	submission, err := s.SubmissionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	switch claims.Role {
	case model.Admin:
	case model.Student:
		if submission.StudentID != claims.UserID {
			return nil, util.ErrPermissionDenied
		}
	case model.Instructor:
		if submission.Assessment == nil || submission.Assessment.Course == nil ||
			submission.Assessment.Course.InstructorID != claims.UserID {
			return nil, util.ErrPermissionDenied
		}
	default:
		return nil, util.ErrPermissionDenied
	}
	return submission, nil
}

// List scopes by role the same way assessments are scoped.
func (s *SubmissionService) List(claims *util.Claims, assessmentID uint, status string, page, limit int) ([]model.Submission, int64, error) {
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
	return s.SubmissionRepo.List(instructorID, studentID, assessmentID, status, page, limit)
}
