package model

import "github.com/shopspring/decimal"

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// PaymentTransaction records a (simulated) course payment by a student.
//
// swagger:model PaymentTransaction
type PaymentTransaction struct {
	BaseModel
	UserID    uint            `gorm:"index;type:bigint unsigned" json:"userId"`
	User      *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CourseID  uint            `gorm:"index;type:bigint unsigned" json:"courseId"`
	Course    *Course         `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Method    string          `gorm:"size:20" json:"method"`
	Status    string          `gorm:"size:20;default:'pending'" json:"status"`
	Reference string          `gorm:"size:64;uniqueIndex" json:"reference"`
}

func (PaymentTransaction) TableName() string {
	return "payment_transactions"
}
