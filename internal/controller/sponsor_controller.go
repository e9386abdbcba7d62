package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SponsorController struct {
	Service *service.SponsorService
}

func NewSponsorController(svc *service.SponsorService) *SponsorController {
	return &SponsorController{Service: svc}
}

// @Summary Create a sponsor profile
// @Tags sponsorships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.SponsorProfileRequest true "profile fields"
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/sponsor/profile [post]
func (c *SponsorController) CreateProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SponsorProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.Service.CreateProfile(user.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, profile)
}

// @Summary Get own sponsor profile
// @Tags sponsorships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/sponsor/profile [get]
func (c *SponsorController) GetMyProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.Service.GetMyProfile(user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// @Summary List sponsor profiles
// @Tags sponsorships
// @Produce json
// @Security BearerAuth
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/admin/sponsors [get]
func (c *SponsorController) ListProfiles(ctx *gin.Context) {
	page, limit := parsePaging(ctx)
	profiles, total, err := c.Service.ListProfiles(page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: profiles, Total: total, Page: page, Limit: limit})
}

// @Summary Add funds to own balance
// @Tags sponsorships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.FundsRequest true "amount to add"
// @Success 200 {object} util.Response
// @Router /api/sponsor/funds/add [post]
func (c *SponsorController) AddFunds(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.FundsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.Service.AddFunds(user.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// @Summary Deduct funds from own balance
// @Tags sponsorships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.FundsRequest true "amount to deduct"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/sponsor/funds/deduct [post]
func (c *SponsorController) DeductFunds(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.FundsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.Service.DeductFunds(user.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// @Summary List own funds transactions
// @Tags sponsorships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/sponsor/transactions [get]
func (c *SponsorController) ListTransactions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	transactions, err := c.Service.ListTransactions(user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, transactions)
}

// @Summary Sponsor a student
// @Description Deducts the amount from the sponsor's balance and records the sponsorship.
// @Tags sponsorships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.SponsorshipRequest true "sponsorship fields"
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/sponsorships [post]
func (c *SponsorController) CreateSponsorship(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SponsorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sponsorship, err := c.Service.CreateSponsorship(user.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, sponsorship)
}

// @Summary Get a sponsorship
// @Tags sponsorships
// @Produce json
// @Security BearerAuth
// @Param id path int true "sponsorship id"
// @Success 200 {object} util.Response
// @Router /api/sponsorships/{id} [get]
func (c *SponsorController) GetSponsorship(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	sponsorship, err := c.Service.GetSponsorship(user, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sponsorship)
}

// @Summary List sponsorships
// @Description Sponsors see their own, admins all.
// @Tags sponsorships
// @Produce json
// @Security BearerAuth
// @Param search query string false "search over student and course names"
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/sponsorships [get]
func (c *SponsorController) ListSponsorships(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	page, limit := parsePaging(ctx)
	sponsorships, total, err := c.Service.ListSponsorships(user, ctx.Query("search"), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: sponsorships, Total: total, Page: page, Limit: limit})
}
