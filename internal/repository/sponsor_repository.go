package repository

import (
	"lms_backend/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SponsorRepository struct {
	DB *gorm.DB
}

func NewSponsorRepository(db *gorm.DB) *SponsorRepository {
	return &SponsorRepository{DB: db}
}

func (r *SponsorRepository) CreateProfile(p *model.SponsorProfile) error {
	return r.DB.Create(p).Error
}

func (r *SponsorRepository) FindProfileBySponsor(sponsorID uint) (*model.SponsorProfile, error) {
	var p model.SponsorProfile
	err := r.DB.Preload("Sponsor").Where("sponsor_id = ?", sponsorID).First(&p).Error
	return &p, err
}

func (r *SponsorRepository) UpdateProfile(p *model.SponsorProfile) error {
	return r.DB.Save(p).Error
}

func (r *SponsorRepository) ListProfiles(page, limit int) ([]model.SponsorProfile, int64, error) {
	var ps []model.SponsorProfile
	var total int64
	query := r.DB.Model(&model.SponsorProfile{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("Sponsor").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&ps).Error
	return ps, total, err
}

func (r *SponsorRepository) CountProfiles() (int64, error) {
	var total int64
	err := r.DB.Model(&model.SponsorProfile{}).Count(&total).Error
	return total, err
}

func (r *SponsorRepository) ListTransactions(sponsorID uint) ([]model.SponsorTransaction, error) {
	var ts []model.SponsorTransaction
	err := r.DB.Where("sponsor_id = ?", sponsorID).
		Order("created_at desc").
		Find(&ts).Error
	return ts, err
}

// SumTransactions totals ledger rows of one type for a sponsor.
func (r *SponsorRepository) SumTransactions(sponsorID uint, txType string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.DB.Model(&model.SponsorTransaction{}).
		Select("SUM(amount)").
		Where("sponsor_id = ? AND type = ?", sponsorID, txType).
		Scan(&sum).Error
	if err != nil || !sum.Valid {
		return decimal.Zero, err
	}
	return sum.Decimal, nil
}

func (r *SponsorRepository) FindSponsorshipByID(id uint) (*model.Sponsorship, error) {
	var s model.Sponsorship
	err := r.DB.Preload("Student").Preload("Course").Preload("SponsorProfile").First(&s, id).Error
	return &s, err
}

func (r *SponsorRepository) SponsorshipExists(studentID, courseID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Sponsorship{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error
	return count > 0, err
}

// ListSponsorships scopes by profile: admin passes zero.
func (r *SponsorRepository) ListSponsorships(profileID uint, search string, page, limit int) ([]model.Sponsorship, int64, error) {
	var ss []model.Sponsorship
	var total int64

	query := r.DB.Model(&model.Sponsorship{}).
		Joins("LEFT JOIN users ON users.id = sponsorships.student_id").
		Joins("LEFT JOIN courses ON courses.id = sponsorships.course_id")
	if profileID > 0 {
		query = query.Where("sponsorships.sponsor_profile_id = ?", profileID)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("users.name LIKE ? OR courses.name LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Student").Preload("Course").
		Order("sponsorships.created_at desc").
		Offset(offset).Limit(limit).
		Find(&ss).Error
	return ss, total, err
}

func (r *SponsorRepository) FindSponsorshipsByProfile(profileID uint) ([]model.Sponsorship, error) {
	var ss []model.Sponsorship
	err := r.DB.Preload("Student").Preload("Course").
		Where("sponsor_profile_id = ?", profileID).
		Find(&ss).Error
	return ss, err
}

func (r *SponsorRepository) SumSponsorshipAmount() (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.DB.Model(&model.Sponsorship{}).Select("SUM(amount)").Scan(&sum).Error
	if err != nil || !sum.Valid {
		return decimal.Zero, err
	}
	return sum.Decimal, nil
}
