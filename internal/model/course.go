package model

import "github.com/shopspring/decimal"

type CourseDifficulty string

const (
	Beginner     CourseDifficulty = "beginner"
	Intermediate CourseDifficulty = "intermediate"
	Advanced     CourseDifficulty = "advanced"
)

// swagger:model Course
type Course struct {
	BaseModel
	Name         string           `gorm:"size:255;not null" json:"name"`
	Description  string           `gorm:"type:text" json:"description"`
	Difficulty   CourseDifficulty `gorm:"type:enum('beginner','intermediate','advanced');default:'beginner'" json:"difficulty"`
	InstructorID uint             `gorm:"index;type:bigint unsigned" json:"instructorId"`
	Instructor   *User            `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	IsPaid       bool             `gorm:"default:false" json:"isPaid"`
	Price        decimal.Decimal  `gorm:"type:decimal(10,2);default:0" json:"price"`
}

func (Course) TableName() string {
	return "courses"
}
