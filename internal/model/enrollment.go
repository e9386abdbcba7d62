package model

// Enrollment links a student to a course. (student, course) is unique so a
// student cannot enroll twice.
//
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	StudentID uint    `gorm:"index;type:bigint unsigned;uniqueIndex:idx_student_course" json:"studentId"`
	Student   *User   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	CourseID  uint    `gorm:"index;type:bigint unsigned;uniqueIndex:idx_student_course" json:"courseId"`
	Course    *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Progress  float64 `gorm:"type:decimal(5,2);default:0" json:"progress"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
