package service

import (
	"context"
	"encoding/json"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
)

const adminAnalyticsCacheKey = "dashboard:admin_analytics"

type DashboardService struct {
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	SponsorRepo    *repository.SponsorRepository
	Redis          *redis.Client
	CacheTTL       time.Duration
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	sponsorRepo *repository.SponsorRepository,
	rdb *redis.Client,
) *DashboardService {
	return &DashboardService{
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		SponsorRepo:    sponsorRepo,
		Redis:          rdb,
		CacheTTL:       time.Minute,
	}
}

type AdminAnalytics struct {
	TotalUsers       int64           `json:"totalUsers"`
	TotalStudents    int64           `json:"totalStudents"`
	TotalInstructors int64           `json:"totalInstructors"`
	TotalSponsors    int64           `json:"totalSponsors"`
	TotalCourses     int64           `json:"totalCourses"`
	TotalEnrollments int64           `json:"totalEnrollments"`
	SponsorProfiles  int64           `json:"sponsorProfiles"`
	TotalSponsored   decimal.Decimal `json:"totalSponsored"`
}

// AdminAnalytics aggregates platform-wide counts. The result is cached in
// Redis for a short TTL since the numbers feed an admin landing page.
func (s *DashboardService) AdminAnalytics(ctx context.Context) (*AdminAnalytics, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, adminAnalyticsCacheKey).Result(); err == nil {
			var out AdminAnalytics
			if json.Unmarshal([]byte(cached), &out) == nil {
				return &out, nil
			}
		}
	}

	out := &AdminAnalytics{}
	var err error
	if out.TotalUsers, err = s.UserRepo.Count(); err != nil {
		return nil, err
	}
	if out.TotalStudents, err = s.UserRepo.CountByRole(model.Student); err != nil {
		return nil, err
	}
	if out.TotalInstructors, err = s.UserRepo.CountByRole(model.Instructor); err != nil {
		return nil, err
	}
	if out.TotalSponsors, err = s.UserRepo.CountByRole(model.Sponsor); err != nil {
		return nil, err
	}
	if out.TotalCourses, err = s.CourseRepo.Count(); err != nil {
		return nil, err
	}
	if out.TotalEnrollments, err = s.EnrollmentRepo.Count(); err != nil {
		return nil, err
	}
	if out.SponsorProfiles, err = s.SponsorRepo.CountProfiles(); err != nil {
		return nil, err
	}
	if out.TotalSponsored, err = s.SponsorRepo.SumSponsorshipAmount(); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(out); err == nil {
			s.Redis.Set(ctx, adminAnalyticsCacheKey, data, s.CacheTTL)
		}
	}
	return out, nil
}

type SponsoredStudent struct {
	StudentID       uint               `json:"studentId"`
	StudentName     string             `json:"studentName"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	Enrollments     []model.Enrollment `json:"enrollments"`
	AverageProgress decimal.Decimal    `json:"averageProgress"`
}

type SponsorDashboard struct {
	TotalFunds     decimal.Decimal    `json:"totalFunds"`
	TotalAdded     decimal.Decimal    `json:"totalAdded"`
	TotalDeducted  decimal.Decimal    `json:"totalDeducted"`
	TotalSponsored decimal.Decimal    `json:"totalSponsored"`
	StudentCount   int                `json:"studentCount"`
	Students       []SponsoredStudent `json:"students"`
}

// SponsorDashboard summarizes one sponsor's funds and the progress of the
// students they sponsor.
func (s *DashboardService) SponsorDashboard(sponsorID uint) (*SponsorDashboard, error) {
	profile, err := s.SponsorRepo.FindProfileBySponsor(sponsorID)
	if err != nil {
		return nil, err
	}

	out := &SponsorDashboard{TotalFunds: profile.TotalFunds}
	if out.TotalAdded, err = s.SponsorRepo.SumTransactions(sponsorID, model.FundsAdd); err != nil {
		return nil, err
	}
	if out.TotalDeducted, err = s.SponsorRepo.SumTransactions(sponsorID, model.FundsDeduct); err != nil {
		return nil, err
	}

	sponsorships, err := s.SponsorRepo.FindSponsorshipsByProfile(profile.ID)
	if err != nil {
		return nil, err
	}

	byStudent := make(map[uint]*SponsoredStudent)
	order := make([]uint, 0, len(sponsorships))
	for _, sp := range sponsorships {
		out.TotalSponsored = out.TotalSponsored.Add(sp.Amount)
		entry, ok := byStudent[sp.StudentID]
		if !ok {
			entry = &SponsoredStudent{StudentID: sp.StudentID}
			if sp.Student != nil {
				entry.StudentName = sp.Student.Name
			}
			byStudent[sp.StudentID] = entry
			order = append(order, sp.StudentID)
		}
		entry.TotalAmount = entry.TotalAmount.Add(sp.Amount)
	}

	for _, studentID := range order {
		entry := byStudent[studentID]
		enrollments, err := s.EnrollmentRepo.FindByStudent(studentID)
		if err != nil {
			return nil, err
		}
		entry.Enrollments = enrollments
		entry.AverageProgress = AverageProgress(enrollments)
		out.Students = append(out.Students, *entry)
	}
	out.StudentCount = len(order)

	return out, nil
}
