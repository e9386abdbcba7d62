package model

import "encoding/json"

const (
	SubmissionPending = "pending"
	SubmissionGraded  = "graded"
)

// swagger:model Submission
type Submission struct {
	BaseModel
	AssessmentID  uint            `gorm:"index;type:bigint unsigned;uniqueIndex:idx_assessment_student" json:"assessmentId"`
	Assessment    *Assessment     `gorm:"foreignKey:AssessmentID" json:"assessment,omitempty"`
	StudentID     uint            `gorm:"index;type:bigint unsigned;uniqueIndex:idx_assessment_student" json:"studentId"`
	Student       *User           `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Answers       json.RawMessage `gorm:"type:json" json:"answers"`
	AttachmentURL string          `gorm:"size:255" json:"attachmentUrl,omitempty"`
	Grade         float64         `gorm:"type:decimal(5,2);default:0" json:"grade"`
	Status        string          `gorm:"size:20;default:'pending'" json:"status"`
	Feedback      string          `gorm:"type:text" json:"feedback"`
	GradedByID    *uint           `gorm:"type:bigint unsigned" json:"gradedById,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}

type QuestionAnswer struct {
	QuestionID uint   `json:"questionId"`
	Answer     string `json:"answer"`
}
