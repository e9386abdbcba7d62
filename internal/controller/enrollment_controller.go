package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	Service *service.EnrollmentService
}

func NewEnrollmentController(svc *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{Service: svc}
}

type EnrollRequest struct {
	CourseID uint `json:"courseId" binding:"required"`
}

type ProgressRequest struct {
	Progress float64 `json:"progress" binding:"min=0,max=100"`
}

// @Summary Enroll in a course
// @Description Paid courses require an existing sponsorship or a completed payment.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EnrollRequest true "course to enroll in"
// @Success 201 {object} util.Response
// @Failure 402 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.Service.Enroll(user.UserID, req.CourseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, enrollment)
}

// @Summary Simulate a payment and enroll
// @Description Development helper: records a completed payment for paid courses and enrolls the student.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EnrollRequest true "course to pay for"
// @Success 201 {object} util.Response
// @Router /api/enrollments/simulate-payment [post]
func (c *EnrollmentController) SimulatePayment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.Service.SimulatePayment(user.UserID, req.CourseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, enrollment)
}

// @Summary Update enrollment progress
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "enrollment id"
// @Param body body ProgressRequest true "progress percentage"
// @Success 200 {object} util.Response
// @Router /api/enrollments/{id}/progress [put]
func (c *EnrollmentController) UpdateProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.Service.UpdateProgress(user, id, req.Progress)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, enrollment)
}

// @Summary List enrollments
// @Description Students see their own, instructors their courses', admins all.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/enrollments [get]
func (c *EnrollmentController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	page, limit := parsePaging(ctx)
	enrollments, total, err := c.Service.List(user, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: enrollments, Total: total, Page: page, Limit: limit})
}
