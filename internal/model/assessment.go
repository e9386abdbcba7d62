package model

import "time"

// swagger:model Assessment
type Assessment struct {
	BaseModel
	CourseID    uint      `gorm:"index;type:bigint unsigned" json:"courseId"`
	Course      *Course   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	DueDate     time.Time `gorm:"index" json:"dueDate"`
	MaxScore    int       `gorm:"default:100" json:"maxScore"`
}

func (Assessment) TableName() string {
	return "assessments"
}

// swagger:model AssessmentQuestion
type AssessmentQuestion struct {
	BaseModel
	AssessmentID uint   `gorm:"index;type:bigint unsigned" json:"assessmentId"`
	Prompt       string `gorm:"type:text;not null" json:"prompt"`
	Expected     string `gorm:"type:text" json:"-"`
	Points       int    `gorm:"default:0" json:"points"`
	Order        int    `gorm:"default:0" json:"order"`
}

func (AssessmentQuestion) TableName() string {
	return "assessment_questions"
}
