package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SponsorService struct {
	SponsorRepo   *repository.SponsorRepository
	UserRepo      *repository.UserRepository
	CourseRepo    *repository.CourseRepository
	Notifications *NotificationService
}

func NewSponsorService(
	sponsorRepo *repository.SponsorRepository,
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	notifications *NotificationService,
) *SponsorService {
	return &SponsorService{
		SponsorRepo:   sponsorRepo,
		UserRepo:      userRepo,
		CourseRepo:    courseRepo,
		Notifications: notifications,
	}
}

type SponsorProfileRequest struct {
	Organization string `json:"organization"`
}

func (s *SponsorService) CreateProfile(sponsorID uint, req SponsorProfileRequest) (*model.SponsorProfile, error) {
	if _, err := s.SponsorRepo.FindProfileBySponsor(sponsorID); err == nil {
		return nil, util.ErrProfileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile := &model.SponsorProfile{
		SponsorID:    sponsorID,
		Organization: req.Organization,
		TotalFunds:   decimal.Zero,
	}
	if err := s.SponsorRepo.CreateProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *SponsorService) GetMyProfile(sponsorID uint) (*model.SponsorProfile, error) {
	profile, err := s.SponsorRepo.FindProfileBySponsor(sponsorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSponsorProfileReq
	}
	return profile, err
}

func (s *SponsorService) ListProfiles(page, limit int) ([]model.SponsorProfile, int64, error) {
	return s.SponsorRepo.ListProfiles(page, limit)
}

type FundsRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// AddFunds credits the sponsor's balance and writes a ledger row, both inside
// one database transaction.
func (s *SponsorService) AddFunds(sponsorID uint, req FundsRequest) (*model.SponsorProfile, error) {
	amount := decimal.NewFromFloat(req.Amount)
	if !amount.IsPositive() {
		return nil, util.ErrInvalidAmount
	}

	profile, err := s.GetMyProfile(sponsorID)
	if err != nil {
		return nil, err
	}

	err = s.SponsorRepo.DB.Transaction(func(tx *gorm.DB) error {
		profile.TotalFunds = profile.TotalFunds.Add(amount)
		if err := tx.Save(profile).Error; err != nil {
			return err
		}
		ledger := &model.SponsorTransaction{
			SponsorID:    sponsorID,
			Type:         model.FundsAdd,
			Amount:       amount,
			BalanceAfter: profile.TotalFunds,
			Description:  req.Description,
		}
		return tx.Create(ledger).Error
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// DeductFunds debits the balance; the balance never goes negative.
func (s *SponsorService) DeductFunds(sponsorID uint, req FundsRequest) (*model.SponsorProfile, error) {
	amount := decimal.NewFromFloat(req.Amount)
	if !amount.IsPositive() {
		return nil, util.ErrInvalidAmount
	}

	profile, err := s.GetMyProfile(sponsorID)
	if err != nil {
		return nil, err
	}
	if profile.TotalFunds.LessThan(amount) {
		return nil, util.ErrInsufficientFunds
	}

	err = s.SponsorRepo.DB.Transaction(func(tx *gorm.DB) error {
		profile.TotalFunds = profile.TotalFunds.Sub(amount)
		if err := tx.Save(profile).Error; err != nil {
			return err
		}
		ledger := &model.SponsorTransaction{
			SponsorID:    sponsorID,
			Type:         model.FundsDeduct,
			Amount:       amount,
			BalanceAfter: profile.TotalFunds,
			Description:  req.Description,
		}
		return tx.Create(ledger).Error
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *SponsorService) ListTransactions(sponsorID uint) ([]model.SponsorTransaction, error) {
	return s.SponsorRepo.ListTransactions(sponsorID)
}

type SponsorshipRequest struct {
	StudentID uint    `json:"studentId" binding:"required"`
	CourseID  *uint   `json:"courseId"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

// CreateSponsorship funds a student from the sponsor's balance. The deduction,
// ledger row and sponsorship row commit together; the student is notified.
func (s *SponsorService) CreateSponsorship(sponsorID uint, req SponsorshipRequest) (*model.Sponsorship, error) {
	amount := decimal.NewFromFloat(req.Amount)
	if !amount.IsPositive() {
		return nil, util.ErrInvalidAmount
	}

	profile, err := s.SponsorRepo.FindProfileBySponsor(sponsorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSponsorProfileReq
	} else if err != nil {
		return nil, err
	}

	student, err := s.UserRepo.FindByID(req.StudentID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	var course *model.Course
	if req.CourseID != nil {
		course, err = s.CourseRepo.FindByID(*req.CourseID)
		if err != nil {
			return nil, util.ErrCourseNotFound
		}
	}

	if profile.TotalFunds.LessThan(amount) {
		return nil, util.ErrInsufficientFunds
	}

	sponsorship := &model.Sponsorship{
		SponsorProfileID: profile.ID,
		StudentID:        req.StudentID,
		CourseID:         req.CourseID,
		Amount:           amount,
	}

	err = s.SponsorRepo.DB.Transaction(func(tx *gorm.DB) error {
		profile.TotalFunds = profile.TotalFunds.Sub(amount)
		if err := tx.Save(profile).Error; err != nil {
			return err
		}
		ledger := &model.SponsorTransaction{
			SponsorID:    sponsorID,
			Type:         model.FundsDeduct,
			Amount:       amount,
			BalanceAfter: profile.TotalFunds,
			Description:  "sponsorship for " + student.Name,
		}
		if err := tx.Create(ledger).Error; err != nil {
			return err
		}
		return tx.Create(sponsorship).Error
	})
	if err != nil {
		return nil, err
	}

	sponsorName := profile.Organization
	if sponsorName == "" && profile.Sponsor != nil {
		sponsorName = profile.Sponsor.Name
	}
	courseName := ""
	if course != nil {
		courseName = course.Name
	}
	s.Notifications.Notify(
		req.StudentID,
		SponsorshipCreatedMessage(sponsorName, courseName, amount.StringFixed(2)),
	)

	return sponsorship, nil
}

// canViewSponsorship applies the list visibility rule to a single row:
// admin sees all, a sponsor only their own.
func canViewSponsorship(claims *util.Claims, sponsorID uint) bool {
	if claims.Role == model.Admin {
		return true
	}
	return claims.Role == model.Sponsor && claims.UserID == sponsorID
}

func (s *SponsorService) GetSponsorship(claims *util.Claims, id uint) (*model.Sponsorship, error) {
	sponsorship, err := s.SponsorRepo.FindSponsorshipByID(id)
	if err != nil {
		return nil, err
	}

	sponsorID := uint(0)
	if sponsorship.SponsorProfile != nil {
		sponsorID = sponsorship.SponsorProfile.SponsorID
	}
	if !canViewSponsorship(claims, sponsorID) {
		return nil, gorm.ErrRecordNotFound
	}
	return sponsorship, nil
}

// ListSponsorships scopes by role: sponsors see their own, admin all.
func (s *SponsorService) ListSponsorships(claims *util.Claims, search string, page, limit int) ([]model.Sponsorship, int64, error) {
	profileID := uint(0)
	switch claims.Role {
	case model.Admin:
	case model.Sponsor:
		profile, err := s.SponsorRepo.FindProfileBySponsor(claims.UserID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []model.Sponsorship{}, 0, nil
		} else if err != nil {
			return nil, 0, err
		}
		profileID = profile.ID
	default:
		return nil, 0, util.ErrPermissionDenied
	}
	return s.SponsorRepo.ListSponsorships(profileID, search, page, limit)
}
