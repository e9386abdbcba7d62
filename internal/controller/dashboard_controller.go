package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Service: svc}
}

// @Summary Platform analytics
// @Description Aggregated counts of users, courses, enrollments and sponsorship totals.
// @Tags dashboards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/analytics [get]
func (c *DashboardController) AdminAnalytics(ctx *gin.Context) {
	analytics, err := c.Service.AdminAnalytics(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, analytics)
}

// @Summary Sponsor dashboard
// @Description Funds summary plus per-student enrollment progress for the calling sponsor.
// @Tags dashboards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/sponsor/dashboard [get]
func (c *DashboardController) SponsorDashboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	dashboard, err := c.Service.SponsorDashboard(user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}
