package model

import "github.com/shopspring/decimal"

// SponsorProfile holds a sponsor's funds balance. One profile per sponsor.
//
// swagger:model SponsorProfile
type SponsorProfile struct {
	BaseModel
	SponsorID    uint            `gorm:"uniqueIndex;type:bigint unsigned" json:"sponsorId"`
	Sponsor      *User           `gorm:"foreignKey:SponsorID" json:"sponsor,omitempty"`
	Organization string          `gorm:"size:255" json:"organization"`
	TotalFunds   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"totalFunds"`
}

func (SponsorProfile) TableName() string {
	return "sponsor_profiles"
}

const (
	FundsAdd    = "add"
	FundsDeduct = "deduct"
)

// SponsorTransaction is an append-only ledger of funds changes.
//
// swagger:model SponsorTransaction
type SponsorTransaction struct {
	BaseModel
	SponsorID    uint            `gorm:"index;type:bigint unsigned" json:"sponsorId"`
	Type         string          `gorm:"size:10;not null" json:"type"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	BalanceAfter decimal.Decimal `gorm:"type:decimal(12,2)" json:"balanceAfter"`
	Description  string          `gorm:"size:255" json:"description"`
}

func (SponsorTransaction) TableName() string {
	return "sponsor_transactions"
}

// swagger:model Sponsorship
type Sponsorship struct {
	BaseModel
	SponsorProfileID uint            `gorm:"index;type:bigint unsigned" json:"sponsorProfileId"`
	SponsorProfile   *SponsorProfile `gorm:"foreignKey:SponsorProfileID" json:"sponsorProfile,omitempty"`
	StudentID        uint            `gorm:"index;type:bigint unsigned" json:"studentId"`
	Student          *User           `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	CourseID         *uint           `gorm:"index;type:bigint unsigned" json:"courseId,omitempty"`
	Course           *Course         `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Amount           decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
}

func (Sponsorship) TableName() string {
	return "sponsorships"
}
